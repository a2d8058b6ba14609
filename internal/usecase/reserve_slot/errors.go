package reserve_slot

import "errors"

var (
	// ErrInvalidInput возвращается при незаполненной или некорректной форме
	ErrInvalidInput = errors.New("reserve_slot: invalid input data")

	// ErrPackNotBookable возвращается для пакета, недоступного к бронированию
	ErrPackNotBookable = errors.New("reserve_slot: pack is not bookable")

	// ErrInvalidSlot возвращается для слота в прошлом
	ErrInvalidSlot = errors.New("reserve_slot: invalid slot")

	// ErrSlotConflict возвращается, когда слот уже занят
	ErrSlotConflict = errors.New("reserve_slot: slot is no longer free")

	// ErrUpstream возвращается при недоступности календаря
	ErrUpstream = errors.New("reserve_slot: calendar unavailable")

	// ErrNotConfigured возвращается, когда календарь не настроен
	ErrNotConfigured = errors.New("reserve_slot: calendar is not configured")
)
