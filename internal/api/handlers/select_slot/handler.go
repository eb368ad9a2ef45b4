package select_slot

import (
	"encoding/json"
	"net/http"

	"github.com/m04kA/CNAP-BookingService/internal/api/handlers"
	"github.com/m04kA/CNAP-BookingService/internal/api/middleware"
	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/flow"
)

const (
	msgInvalidBody      = "некоректне тіло запиту"
	msgTimeRequired     = "час прийому є обов'язковим"
	msgTimeNotAvailable = "обраний час недоступний для запису"
	msgServiceDown      = "сервіс тимчасово недоступний, спробуйте пізніше"
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

// Handle POST /api/v1/flow/slot
// Body: {"time": "09:30"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	flowSession, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("POST /flow/slot - Failed to load session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if redirect, ok := flow.Check(flowSession, domain.StepDateTime); !ok {
		h.logger.Info("POST /flow/slot - Prerequisite missing, redirecting to %s", redirect)
		handlers.RespondRedirect(w, redirect)
		return
	}

	// Время выбирается только после даты
	if !flowSession.HasDate() {
		h.logger.Info("POST /flow/slot - No date selected, redirecting to %s", domain.StepDateTime)
		handlers.RespondRedirect(w, domain.StepDateTime)
		return
	}

	var req SelectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /flow/slot - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	if req.Time == "" {
		h.logger.Warn("POST /flow/slot - Missing time")
		handlers.RespondBadRequest(w, msgTimeRequired)
		return
	}

	times, err := h.schedule.Times(r.Context(), flowSession.Center.ID, flowSession.Service.ID, flowSession.SelectedDate.ISO)
	if err != nil {
		h.logger.Error("POST /flow/slot - Failed to fetch times: date=%s, error=%v", flowSession.SelectedDate.ISO, err)
		handlers.RespondBadGateway(w, msgServiceDown)
		return
	}

	if !slotAvailable(times, req.Time) {
		h.logger.Warn("POST /flow/slot - Slot not available: date=%s, time=%s", flowSession.SelectedDate.ISO, req.Time)
		handlers.RespondBadRequest(w, msgTimeNotAvailable)
		return
	}

	flowSession.SelectedTime = req.Time

	if err := h.store.Save(r.Context(), sessionID, flowSession); err != nil {
		h.logger.Error("POST /flow/slot - Failed to save session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /flow/slot - Slot selected: date=%s, time=%s", flowSession.SelectedDate.ISO, req.Time)
	handlers.RespondJSON(w, http.StatusOK, &SelectSlotResponse{
		Date: flowSession.SelectedDate.ISO,
		Time: req.Time,
		Next: handlers.PathRegistration,
	})
}

func slotAvailable(times []domain.AvailableTime, slot string) bool {
	for _, t := range times {
		if t.Time == slot {
			return t.IsAvailable
		}
	}
	return false
}
