package select_center

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/CNAP-BookingService/internal/api/handlers"
	"github.com/m04kA/CNAP-BookingService/internal/api/middleware"
	centersService "github.com/m04kA/CNAP-BookingService/internal/service/centers"
)

const (
	msgInvalidBody      = "некоректне тіло запиту"
	msgCenterNotAllowed = "сервісний центр недоступний для запису"
	msgServiceDown      = "сервіс тимчасово недоступний, спробуйте пізніше"
)

type Handler struct {
	service CentersService
	store   SessionStore
	logger  Logger
}

func NewHandler(service CentersService, store SessionStore, logger Logger) *Handler {
	return &Handler{
		service: service,
		store:   store,
		logger:  logger,
	}
}

// Handle POST /api/v1/flow/center
// Body: {"serviceCenterId": 1}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectCenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /flow/center - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	center, err := h.service.Get(r.Context(), req.ServiceCenterID)
	if err != nil {
		switch {
		case errors.Is(err, centersService.ErrCenterNotAllowed):
			h.logger.Warn("POST /flow/center - Center not allowed: center_id=%d", req.ServiceCenterID)
			handlers.RespondBadRequest(w, msgCenterNotAllowed)
		default:
			h.logger.Error("POST /flow/center - Failed to get center: center_id=%d, error=%v", req.ServiceCenterID, err)
			handlers.RespondBadGateway(w, msgServiceDown)
		}
		return
	}

	sessionID := middleware.SessionID(r.Context())
	flowSession, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("POST /flow/center - Failed to load session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Выбор центра сбрасывает услугу, слот и регистрацию
	flowSession.SelectCenter(center)

	if err := h.store.Save(r.Context(), sessionID, flowSession); err != nil {
		h.logger.Error("POST /flow/center - Failed to save session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /flow/center - Center selected: center_id=%d", center.ID)
	handlers.RespondJSON(w, http.StatusOK, &SelectCenterResponse{
		ServiceCenterID: center.ID,
		Name:            center.Name,
		Next:            handlers.PathServices,
	})
}
