package list_times

import (
	"errors"
	"net/http"

	"github.com/m04kA/CNAP-BookingService/internal/api/handlers"
	"github.com/m04kA/CNAP-BookingService/internal/api/middleware"
	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/flow"
	scheduleService "github.com/m04kA/CNAP-BookingService/internal/service/schedule"
)

const (
	msgDateRequired     = "параметр date є обов'язковим"
	msgDateNotAvailable = "обрана дата недоступна для запису"
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

// Handle GET /api/v1/flow/times?date=2025-01-27
// Фиксирует дату в сессии и возвращает слоты времени на нее
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	flowSession, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /flow/times - Failed to load session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if redirect, ok := flow.Check(flowSession, domain.StepDateTime); !ok {
		h.logger.Info("GET /flow/times - Prerequisite missing, redirecting to %s", redirect)
		handlers.RespondRedirect(w, redirect)
		return
	}

	iso := r.URL.Query().Get("date")
	if iso == "" {
		h.logger.Warn("GET /flow/times - Missing date parameter")
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := h.schedule.FindDate(r.Context(), flowSession.Center.ID, flowSession.Service.ID, iso)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrDateNotAvailable):
			h.logger.Warn("GET /flow/times - Date not available: date=%s", iso)
			handlers.RespondBadRequest(w, msgDateNotAvailable)
		default:
			h.logger.Error("GET /flow/times - Failed to check date: date=%s, error=%v", iso, err)
			handlers.RespondJSON(w, http.StatusOK, &TimesResponse{
				Date:  Date{ISO: iso},
				Times: []Time{},
			})
		}
		return
	}

	// Смена даты сбрасывает ранее выбранное время
	flowSession.SelectDate(date)

	if err := h.store.Save(r.Context(), sessionID, flowSession); err != nil {
		h.logger.Error("GET /flow/times - Failed to save session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	times, err := h.schedule.Times(r.Context(), flowSession.Center.ID, flowSession.Service.ID, date.ISO)
	if err != nil {
		h.logger.Error("GET /flow/times - Failed to list times: date=%s, error=%v", date.ISO, err)
		handlers.RespondJSON(w, http.StatusOK, &TimesResponse{
			Date:  Date{Label: date.Label, ISO: date.ISO},
			Times: []Time{},
		})
		return
	}

	h.logger.Info("GET /flow/times - Listed %d slots for date=%s", len(times), date.ISO)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(date, times))
}
