package list_dates

import (
	"context"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
)

// ScheduleService интерфейс расписания записи
type ScheduleService interface {
	Dates(ctx context.Context, serviceCenterID, serviceID int64) ([]domain.AvailableDate, error)
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
