package nominatim

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("nominatim client: internal error")

	// ErrUnavailable возвращается, когда сервис не ответил или ответил ошибкой
	ErrUnavailable = errors.New("nominatim client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("nominatim client: invalid response")
)
