package create_checkout

import "errors"

var (
	// ErrInvalidInput возвращается при незаполненной или некорректной форме
	ErrInvalidInput = errors.New("create_checkout: invalid input data")

	// ErrPackNotBookable возвращается для пакета, недоступного к бронированию
	ErrPackNotBookable = errors.New("create_checkout: pack is not bookable")

	// ErrInvalidSlot возвращается для слота в прошлом
	ErrInvalidSlot = errors.New("create_checkout: invalid slot")

	// ErrSlotConflict возвращается, когда слот уже занят
	ErrSlotConflict = errors.New("create_checkout: slot is no longer free")

	// ErrUpstream возвращается при недоступности календаря или Stripe
	ErrUpstream = errors.New("create_checkout: upstream unavailable")

	// ErrNotConfigured возвращается, когда календарь или Stripe не настроены
	ErrNotConfigured = errors.New("create_checkout: not configured")
)
