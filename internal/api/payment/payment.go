package payment

import (
	dto "starspin_backend/internal/api/dto/payment"
	"starspin_backend/internal/converter"
	"starspin_backend/internal/model"
	"starspin_backend/internal/service"
	"starspin_backend/pkg/req"
	"starspin_backend/pkg/resp"
	"errors"
	"net/http"
)

type HandlerDeps struct {
	Serv service.PaymentService
}

type Handler struct {
	serv service.PaymentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Packages - список пакетов звёзд
func (h *Handler) Packages(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPackagesResponse(h.serv.Packages()))
}

// Deposit зачисляет оплаченный пакет звёзд
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	player, err := h.serv.Deposit(r.Context(), payload.TelegramID, payload.Stars, payload.PaymentID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUnknownPackage):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, model.ErrPlayerNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, model.ErrPlayerBanned):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDepositResponse(*player))
}
