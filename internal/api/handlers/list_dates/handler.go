package list_dates

import (
	"net/http"

	"github.com/m04kA/CNAP-BookingService/internal/api/handlers"
	"github.com/m04kA/CNAP-BookingService/internal/api/middleware"
	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/flow"
)

type Handler struct {
	schedule ScheduleService
	store    SessionStore
	logger   Logger
}

func NewHandler(schedule ScheduleService, store SessionStore, logger Logger) *Handler {
	return &Handler{
		schedule: schedule,
		store:    store,
		logger:   logger,
	}
}

// Handle GET /api/v1/flow/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	flowSession, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /flow/dates - Failed to load session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if redirect, ok := flow.Check(flowSession, domain.StepDateTime); !ok {
		h.logger.Info("GET /flow/dates - Prerequisite missing, redirecting to %s", redirect)
		handlers.RespondRedirect(w, redirect)
		return
	}

	dates, err := h.schedule.Dates(r.Context(), flowSession.Center.ID, flowSession.Service.ID)
	if err != nil {
		h.logger.Error("GET /flow/dates - Failed to list dates: center_id=%d, service_id=%d, error=%v",
			flowSession.Center.ID, flowSession.Service.ID, err)
		handlers.RespondJSON(w, http.StatusOK, &DatesResponse{Dates: []Date{}})
		return
	}

	h.logger.Info("GET /flow/dates - Listed %d dates for center_id=%d, service_id=%d",
		len(dates), flowSession.Center.ID, flowSession.Service.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(dates))
}
