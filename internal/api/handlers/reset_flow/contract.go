package reset_flow

import "context"

// SessionStore интерфейс хранилища сессий флоу
type SessionStore interface {
	Delete(ctx context.Context, sessionID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
