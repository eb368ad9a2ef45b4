package list_services

import (
	"net/http"
	"strconv"

	"github.com/m04kA/CNAP-BookingService/internal/api/handlers"
	"github.com/m04kA/CNAP-BookingService/internal/api/middleware"
	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/flow"
)

const msgInvalidGroupID = "некоректний ID групи послуг"

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

// Handle GET /api/v1/flow/services
// Query params: groupId (опционально, сужает список до группы),
// search (опционально, фильтр по описанию услуги)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	flowSession, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /flow/services - Failed to load session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if redirect, ok := flow.Check(flowSession, domain.StepServices); !ok {
		h.logger.Info("GET /flow/services - Prerequisite missing, redirecting to %s", redirect)
		handlers.RespondRedirect(w, redirect)
		return
	}

	// Выбор группы сужает список; сброс группы (возврат назад или поиск
	// по всем услугам) снова дает полный список
	var groupID *int64
	if groupIDStr := r.URL.Query().Get("groupId"); groupIDStr != "" {
		id, err := strconv.ParseInt(groupIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /flow/services - Invalid group ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGroupID)
			return
		}
		groupID = &id
	}

	search := r.URL.Query().Get("search")

	services, err := h.catalog.Services(r.Context(), flowSession.Center.ID, groupID, search)
	if err != nil {
		h.logger.Error("GET /flow/services - Failed to list services: center_id=%d, error=%v", flowSession.Center.ID, err)
		handlers.RespondJSON(w, http.StatusOK, &ServicesResponse{Services: []Service{}})
		return
	}

	h.logger.Info("GET /flow/services - Listed %d services for center_id=%d", len(services), flowSession.Center.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(services))
}
