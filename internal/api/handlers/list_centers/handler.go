package list_centers

import (
	"net/http"

	"github.com/m04kA/CNAP-BookingService/internal/api/handlers"
)

type Handler struct {
	service CentersService
	logger  Logger
}

func NewHandler(service CentersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/flow/centers
// Query params: search (опционально, фильтр по названию центра)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	centers, err := h.service.List(r.Context(), search)
	if err != nil {
		// Недоступный API вырождается в пустой список:
		// флоу показывает пустую страницу, а не ошибку
		h.logger.Error("GET /flow/centers - Failed to list centers: %v", err)
		handlers.RespondJSON(w, http.StatusOK, &CentersResponse{Centers: []Center{}})
		return
	}

	h.logger.Info("GET /flow/centers - Listed %d centers (search=%q)", len(centers), search)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(centers))
}
