package receipt

import "context"

// QueueServiceClient интерфейс клиента QueueService API
type QueueServiceClient interface {
	GetReceipt(ctx context.Context, organisationGuid string, serviceCenterID int64, orderGuid string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
