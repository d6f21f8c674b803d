package withdrawal

import (
	dto "starspin_backend/internal/api/dto/withdrawal"
	"starspin_backend/internal/converter"
	"starspin_backend/internal/middleware"
	"starspin_backend/internal/model"
	"starspin_backend/internal/service"
	"starspin_backend/pkg/req"
	"starspin_backend/pkg/resp"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.WithdrawalService
}

type Handler struct {
	serv service.WithdrawalService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create - заявка игрока на вывод звёзд
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	withdrawal, err := h.serv.Create(r.Context(), payload.TelegramID, payload.Amount)
	if err != nil {
		http.Error(w, err.Error(), createStatus(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToWithdrawalResponse(*withdrawal))
}

// ListPending - ожидающие заявки для админ-панели
func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.serv.ListPending(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawalsResponse(pending))
}

// Approve подтверждает выплату
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, h.serv.Approve)
}

// Reject отклоняет заявку и возвращает холд
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, h.serv.Reject)
}

func (h *Handler) process(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id int, adminID int64, note string) (*model.Withdrawal, error),
) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		http.Error(w, "admin id not found in context", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.ProcessRequest](r.Body)
	if err != nil {
		payload = dto.ProcessRequest{}
	}

	withdrawal, err := fn(r.Context(), id, int64(adminID), payload.Note)
	if err != nil {
		if errors.Is(err, model.ErrWithdrawalNotPending) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawalResponse(*withdrawal))
}

func createStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrBelowMinWithdrawal),
		errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrDuplicatePendingWithdrawal):
		return http.StatusConflict
	case errors.Is(err, model.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrPlayerBanned):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
