package game

import (
	dto "starspin_backend/internal/api/dto/game"
	"starspin_backend/internal/converter"
	"starspin_backend/internal/model"
	"starspin_backend/internal/service"
	"starspin_backend/pkg/req"
	"starspin_backend/pkg/resp"
	"errors"
	"net/http"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpinRequest(payload))
	if err != nil {
		http.Error(w, err.Error(), spinStatus(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) PayTable(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPayTableResponse(h.serv.PayTable()))
}

// Статусы для доменных ошибок спина
func spinStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidWager),
		errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrPlayerBanned):
		return http.StatusForbidden
	case errors.Is(err, model.ErrConcurrentModification):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
