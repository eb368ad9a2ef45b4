package catalog

import (
	"context"

	"github.com/m04kA/CNAP-BookingService/internal/integrations/queueservice"
)

// QueueServiceClient интерфейс клиента QueueService API
type QueueServiceClient interface {
	GetGroups(ctx context.Context, serviceCenterID int64) ([]queueservice.ServiceGroup, error)
	GetServices(ctx context.Context, serviceCenterID, groupID int64) ([]queueservice.Service, error)
	GetAllServices(ctx context.Context, serviceCenterID int64) ([]queueservice.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
