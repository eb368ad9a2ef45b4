package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается при попытке выбрать услугу вне каталога центра
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
