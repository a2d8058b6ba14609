package reservation

import "errors"

var (
	// ErrInvalidSlot возвращается при некорректном или прошедшем слоте
	ErrInvalidSlot = errors.New("reservation: invalid slot")

	// ErrSlotConflict возвращается, когда слот пересекается с занятым интервалом (с учетом буфера)
	ErrSlotConflict = errors.New("reservation: slot is no longer free")

	// ErrUpstream возвращается при ошибке внешнего календаря. Никогда не означает "слот свободен".
	ErrUpstream = errors.New("reservation: calendar unavailable")

	// ErrNotConfigured возвращается, когда календарь не настроен
	ErrNotConfigured = errors.New("reservation: calendar is not configured")
)
