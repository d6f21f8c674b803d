package player

import (
	dto "starspin_backend/internal/api/dto/player"
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
	Serv service.PlayerService
}

type Handler struct {
	serv service.PlayerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register создаёт игрока при первом обращении бота
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.TelegramID == 0 {
		http.Error(w, "telegram_id is required", http.StatusBadRequest)
		return
	}

	player, err := h.serv.Register(r.Context(), converter.ToPlayerRegistration(payload))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToPlayerResponse(*player))
}

// Profile - профиль игрока по telegram_id из пути
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	telegramID, err := strconv.ParseInt(chi.URLParam(r, "telegramID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid telegram id", http.StatusBadRequest)
		return
	}

	player, err := h.serv.Profile(r.Context(), telegramID)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerResponse(*player))
}

// NewCaptcha выдаёт игроку новую капчу
func (h *Handler) NewCaptcha(w http.ResponseWriter, r *http.Request) {
	telegramID, err := strconv.ParseInt(chi.URLParam(r, "telegramID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid telegram id", http.StatusBadRequest)
		return
	}

	question, err := h.serv.NewCaptcha(r.Context(), telegramID)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.CaptchaResponse{Question: question})
}

// VerifyCaptcha проверяет ответ игрока
func (h *Handler) VerifyCaptcha(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.VerifyCaptchaRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	passed, err := h.serv.VerifyCaptcha(r.Context(), payload.TelegramID, payload.Answer)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.VerifyCaptchaResponse{Passed: passed})
}
