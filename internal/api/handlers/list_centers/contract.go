package list_centers

import (
	"context"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
)

// CentersService интерфейс сервиса сервисных центров
type CentersService interface {
	List(ctx context.Context, search string) ([]domain.ServiceCenter, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
