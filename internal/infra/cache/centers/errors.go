package centers

import "errors"

var (
	// ErrCacheMiss возвращается, когда записи нет или ее срок истек
	ErrCacheMiss = errors.New("service centers cache: miss")

	// ErrInternal возвращается при ошибках обращения к redis
	ErrInternal = errors.New("service centers cache: internal error")
)
