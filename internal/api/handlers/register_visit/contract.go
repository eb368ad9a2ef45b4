package register_visit

import (
	"context"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
	ucRegisterVisit "github.com/m04kA/CNAP-BookingService/internal/usecase/register_visit"
)

// RegisterVisitUseCase интерфейс use case регистрации визита
type RegisterVisitUseCase interface {
	Execute(ctx context.Context, req *ucRegisterVisit.Request) (*ucRegisterVisit.Response, error)
}

// SessionStore интерфейс хранилища сессий флоу
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.FlowSession, error)
	Save(ctx context.Context, sessionID string, session *domain.FlowSession) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
