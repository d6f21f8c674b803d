package admin

import (
	"starspin_backend/internal/converter"
	"starspin_backend/internal/service"
	"starspin_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.AdminService
}

type Handler struct {
	serv service.AdminService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Stats - сводка для главного экрана админ-панели
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAdminStatsResponse(*stats))
}
