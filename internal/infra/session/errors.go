package session

import "errors"

var (
	// ErrInternal возвращается при ошибках обращения к redis
	ErrInternal = errors.New("session store: internal error")
)
