package reset_flow

import (
	"net/http"

	"github.com/m04kA/CNAP-BookingService/internal/api/handlers"
	"github.com/m04kA/CNAP-BookingService/internal/api/middleware"
)

type Handler struct {
	store  SessionStore
	logger Logger
}

func NewHandler(store SessionStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle POST /api/v1/flow/reset
// Сбрасывает состояние флоу: новая запись начинается с чистого листа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	if err := h.store.Delete(r.Context(), sessionID); err != nil {
		h.logger.Error("POST /flow/reset - Failed to delete session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /flow/reset - Flow state cleared")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
