package register_visit

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/CNAP-BookingService/internal/api/handlers"
	"github.com/m04kA/CNAP-BookingService/internal/api/middleware"
	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/flow"
	ucRegisterVisit "github.com/m04kA/CNAP-BookingService/internal/usecase/register_visit"
)

const (
	msgInvalidBody        = "некоректне тіло запиту"
	msgInvalidProfile     = "перевірте правильність заповнення форми"
	msgRegistrationFailed = "не вдалося зареєструвати візит, спробуйте пізніше"
)

type Handler struct {
	usecase RegisterVisitUseCase
	store   SessionStore
	logger  Logger
}

func NewHandler(usecase RegisterVisitUseCase, store SessionStore, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		store:   store,
		logger:  logger,
	}
}

// Handle POST /api/v1/flow/registration
// Body: {"lastName": "...", "firstName": "...", "middleName": "...", "phone": "...", "email": "...", "companyName": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	flowSession, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("POST /flow/registration - Failed to load session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if redirect, ok := flow.Check(flowSession, domain.StepProfile); !ok {
		h.logger.Info("POST /flow/registration - Prerequisite missing, redirecting to %s", redirect)
		handlers.RespondRedirect(w, redirect)
		return
	}

	var req RegisterVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /flow/registration - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	profile := req.ToDomain()

	resp, err := h.usecase.Execute(r.Context(), &ucRegisterVisit.Request{
		Center:  flowSession.Center,
		Service: flowSession.Service,
		Date:    flowSession.SelectedDate,
		Time:    flowSession.SelectedTime,
		Profile: profile,
	})
	if err != nil {
		switch {
		case errors.Is(err, ucRegisterVisit.ErrInvalidInput):
			h.logger.Warn("POST /flow/registration - Invalid profile: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfile)
		default:
			h.logger.Error("POST /flow/registration - Registration failed: %v", err)
			handlers.RespondBadGateway(w, msgRegistrationFailed)
		}
		return
	}

	flowSession.Profile = &profile
	flowSession.Registration = &resp.Result

	if err := h.store.Save(r.Context(), sessionID, flowSession); err != nil {
		h.logger.Error("POST /flow/registration - Failed to save session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /flow/registration - Visit registered: receipt=%s", resp.Result.ReceiptNum)
	handlers.RespondJSON(w, http.StatusOK, &RegisterVisitResponse{
		OrderGuid:  resp.Result.OrderGuid,
		ReceiptNum: resp.Result.ReceiptNum,
		Next:       handlers.PathReceipt,
	})
}
