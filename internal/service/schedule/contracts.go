package schedule

import (
	"context"

	"github.com/m04kA/CNAP-BookingService/internal/integrations/queueservice"
)

// QueueServiceClient интерфейс клиента QueueService API
type QueueServiceClient interface {
	GetAvailableDates(ctx context.Context, serviceCenterID, serviceID int64) ([]queueservice.AvailableDate, error)
	GetAvailableTimes(ctx context.Context, serviceCenterID, serviceID int64, date string) ([]queueservice.AvailableTime, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
