package get_receipt

import (
	"context"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
)

// ReceiptService интерфейс получения печатной формы чека
type ReceiptService interface {
	Fetch(ctx context.Context, serviceCenterID int64, orderGuid string) string
}

// SessionStore интерфейс хранилища сессий флоу
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.FlowSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
