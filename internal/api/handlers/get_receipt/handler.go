package get_receipt

import (
	"net/http"

	"github.com/m04kA/CNAP-BookingService/internal/api/handlers"
	"github.com/m04kA/CNAP-BookingService/internal/api/middleware"
	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/flow"
)

type Handler struct {
	receipts ReceiptService
	store    SessionStore
	logger   Logger
}

func NewHandler(receipts ReceiptService, store SessionStore, logger Logger) *Handler {
	return &Handler{
		receipts: receipts,
		store:    store,
		logger:   logger,
	}
}

// Handle GET /api/v1/flow/receipt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	flowSession, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /flow/receipt - Failed to load session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if redirect, ok := flow.Check(flowSession, domain.StepReceipt); !ok {
		h.logger.Info("GET /flow/receipt - Prerequisite missing, redirecting to %s", redirect)
		handlers.RespondRedirect(w, redirect)
		return
	}

	markup := h.receipts.Fetch(r.Context(), flowSession.Center.ID, flowSession.Registration.OrderGuid)

	h.logger.Info("GET /flow/receipt - Receipt served: receipt=%s", flowSession.Registration.ReceiptNum)
	handlers.RespondJSON(w, http.StatusOK, &ReceiptResponse{
		ReceiptNum:  flowSession.Registration.ReceiptNum,
		CenterName:  flowSession.Center.Name,
		ServiceName: flowSession.Service.Description,
		Date:        flowSession.SelectedDate.Label,
		Time:        flowSession.SelectedTime,
		Markup:      markup,
	})
}
