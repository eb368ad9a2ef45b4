package list_groups

import (
	"net/http"

	"github.com/m04kA/CNAP-BookingService/internal/api/handlers"
	"github.com/m04kA/CNAP-BookingService/internal/api/middleware"
	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/flow"
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

// Handle GET /api/v1/flow/groups
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	flowSession, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /flow/groups - Failed to load session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if redirect, ok := flow.Check(flowSession, domain.StepServices); !ok {
		h.logger.Info("GET /flow/groups - Prerequisite missing, redirecting to %s", redirect)
		handlers.RespondRedirect(w, redirect)
		return
	}

	groups, err := h.catalog.Groups(r.Context(), flowSession.Center.ID)
	if err != nil {
		h.logger.Error("GET /flow/groups - Failed to list groups: center_id=%d, error=%v", flowSession.Center.ID, err)
		handlers.RespondJSON(w, http.StatusOK, &GroupsResponse{Groups: []Group{}})
		return
	}

	h.logger.Info("GET /flow/groups - Listed %d groups for center_id=%d", len(groups), flowSession.Center.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(groups))
}
