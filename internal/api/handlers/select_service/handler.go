package select_service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/CNAP-BookingService/internal/api/handlers"
	"github.com/m04kA/CNAP-BookingService/internal/api/middleware"
	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/flow"
	catalogService "github.com/m04kA/CNAP-BookingService/internal/service/catalog"
)

const (
	msgInvalidBody     = "некоректне тіло запиту"
	msgServiceNotFound = "послугу не знайдено в цьому сервісному центрі"
	msgServiceDown     = "сервіс тимчасово недоступний, спробуйте пізніше"
)

type Handler struct {
	catalog CatalogService
	store   SessionStore
	logger  Logger
}

func NewHandler(catalog CatalogService, store SessionStore, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		store:   store,
		logger:  logger,
	}
}

// Handle POST /api/v1/flow/service
// Body: {"serviceId": 306}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	flowSession, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("POST /flow/service - Failed to load session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if redirect, ok := flow.Check(flowSession, domain.StepServices); !ok {
		h.logger.Info("POST /flow/service - Prerequisite missing, redirecting to %s", redirect)
		handlers.RespondRedirect(w, redirect)
		return
	}

	var req SelectServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /flow/service - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	service, err := h.catalog.Get(r.Context(), flowSession.Center.ID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("POST /flow/service - Service not found: center_id=%d, service_id=%d", flowSession.Center.ID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
		default:
			h.logger.Error("POST /flow/service - Failed to get service: service_id=%d, error=%v", req.ServiceID, err)
			handlers.RespondBadGateway(w, msgServiceDown)
		}
		return
	}

	// Выбор услуги сбрасывает дату, время и регистрацию
	flowSession.SelectService(service)

	if err := h.store.Save(r.Context(), sessionID, flowSession); err != nil {
		h.logger.Error("POST /flow/service - Failed to save session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /flow/service - Service selected: service_id=%d", service.ID)
	handlers.RespondJSON(w, http.StatusOK, &SelectServiceResponse{
		ServiceID:   service.ID,
		Description: service.Description,
		Next:        handlers.PathDates,
	})
}
