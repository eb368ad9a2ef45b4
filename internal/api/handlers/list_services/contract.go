package list_services

import (
	"context"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
)

// CatalogService интерфейс каталога групп и услуг
type CatalogService interface {
	Services(ctx context.Context, serviceCenterID int64, groupID *int64, search string) ([]domain.Service, error)
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
