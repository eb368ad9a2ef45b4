package select_center

import (
	"context"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
)

// CentersService интерфейс сервиса сервисных центров
type CentersService interface {
	Get(ctx context.Context, id int64) (*domain.ServiceCenter, error)
}

// SessionStore интерфейс хранилища сессий флоу
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.FlowSession, error)
	Save(ctx context.Context, sessionID string, flowSession *domain.FlowSession) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
