package centers

import "errors"

var (
	// ErrCenterNotAllowed возвращается при попытке выбрать центр вне allow-list
	ErrCenterNotAllowed = errors.New("service center is not allowed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
