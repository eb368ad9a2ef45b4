package register_visit

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRegistrationFailed возвращается, когда регистрация не прошла на стороне API
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
