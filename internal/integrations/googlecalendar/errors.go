package googlecalendar

import "errors"

var (
	// ErrNotConfigured возвращается, когда не заданы календарь или учетные данные сервисного аккаунта
	ErrNotConfigured = errors.New("googlecalendar: configuration missing")

	// ErrUnavailable возвращается при таймауте, сетевой ошибке или 5xx от Google
	ErrUnavailable = errors.New("googlecalendar: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе или отказе Google (4xx)
	ErrInvalidResponse = errors.New("googlecalendar: invalid response")

	// ErrEventNotFound возвращается, когда событие с указанной меткой не найдено
	ErrEventNotFound = errors.New("googlecalendar: event not found")
)
