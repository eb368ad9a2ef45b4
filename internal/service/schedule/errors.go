package schedule

import "errors"

var (
	// ErrDateNotAvailable возвращается при попытке выбрать дату вне списка доступных
	ErrDateNotAvailable = errors.New("date is not available")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
