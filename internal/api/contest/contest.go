package contest

import (
	dto "starspin_backend/internal/api/dto/contest"
	"starspin_backend/internal/converter"
	"starspin_backend/internal/model"
	"starspin_backend/internal/service"
	"starspin_backend/pkg/req"
	"starspin_backend/pkg/resp"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.ContestService
}

type Handler struct {
	serv service.ContestService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Active - текущий активный конкурс
func (h *Handler) Active(w http.ResponseWriter, r *http.Request) {
	contest, err := h.serv.Active(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrContestNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToContestResponse(*contest))
}

// Create открывает новый конкурс (админ)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	contest, err := h.serv.Create(r.Context(), payload.Title, payload.Description, payload.EndDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToContestResponse(*contest))
}

// Join регистрирует игрока в активном конкурсе
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.JoinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	participant, err := h.serv.Join(r.Context(), payload.TelegramID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrContestNotFound), errors.Is(err, model.ErrPlayerNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, model.ErrPlayerBanned):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToParticipantResponse(*participant))
}

// Standings - турнирная таблица конкурса
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid contest id", http.StatusBadRequest)
		return
	}

	standings, err := h.serv.Standings(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStandingsResponse(standings))
}

// Finish закрывает конкурс и объявляет победителей (админ)
func (h *Handler) Finish(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid contest id", http.StatusBadRequest)
		return
	}

	contest, err := h.serv.Finish(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrContestNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToContestResponse(*contest))
}
