package centers

import (
	"context"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/integrations/queueservice"
)

// QueueServiceClient интерфейс клиента QueueService API
type QueueServiceClient interface {
	GetServiceCenters(ctx context.Context) ([]queueservice.ServiceCenter, error)
}

// CentersCache интерфейс кэша списка сервисных центров
type CentersCache interface {
	Read(ctx context.Context) ([]domain.ServiceCenter, error)
	Write(ctx context.Context, centers []domain.ServiceCenter) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
