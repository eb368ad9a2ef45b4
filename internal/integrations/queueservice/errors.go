package queueservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("queueservice client: internal error")

	// ErrRequestFailed возвращается при сетевой ошибке или неуспешном статусе ответа
	ErrRequestFailed = errors.New("queueservice client: request failed")

	// ErrInvalidResponse возвращается, когда ответ не удалось разобрать
	ErrInvalidResponse = errors.New("queueservice client: invalid response")
)
