package register_visit

import (
	"context"

	"github.com/m04kA/CNAP-BookingService/internal/integrations/queueservice"
)

// QueueServiceClient интерфейс клиента QueueService API
type QueueServiceClient interface {
	RegisterCustomer(ctx context.Context, params queueservice.RegisterCustomerParams) (*queueservice.RegistrationResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
