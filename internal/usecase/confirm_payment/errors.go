package confirm_payment

import "errors"

var (
	// ErrUpstream возвращается, когда событие не удалось создать из-за недоступности календаря.
	// Провайдер оплаты должен повторить доставку.
	ErrUpstream = errors.New("confirm_payment: calendar unavailable")

	// ErrNotConfigured возвращается, когда календарь не настроен
	ErrNotConfigured = errors.New("confirm_payment: calendar is not configured")
)
