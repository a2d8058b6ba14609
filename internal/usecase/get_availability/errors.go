package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrPackNotBookable возвращается для неизвестного пакета
	ErrPackNotBookable = errors.New("get_availability: pack is not bookable")

	// ErrUpstream возвращается, когда календарь недоступен: доступность неизвестна
	ErrUpstream = errors.New("get_availability: calendar unavailable")

	// ErrNotConfigured возвращается, когда календарь не настроен
	ErrNotConfigured = errors.New("get_availability: calendar is not configured")
)
