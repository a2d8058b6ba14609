package domain

// Значения политики расписания по умолчанию
const (
	DefaultTimeZone             = "Europe/Brussels"
	DefaultOpenHour             = 8
	DefaultCloseHour            = 20
	DefaultSlotStepMinutes      = 30
	DefaultMinNoticeMinutes     = 120
	DefaultTransitBufferMinutes = 60
	DefaultLookaheadDays        = 45
	DefaultMaxDaysReturned      = 18
)

// Константы бизнес-валидации
const (
	MinSlotStepMinutes      = 5
	MaxSlotStepMinutes      = 240
	MaxMinNoticeMinutes     = 10080 // 1 неделя
	MaxTransitBufferMinutes = 480
	MaxLookaheadDays        = 365
	MaxNotesLength          = 450
	MaxFieldLength          = 200
)

// DepositPercent доля от полной стоимости пакета, которая оплачивается онлайн
const DepositPercent = 20

// Константы форматов времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ключи private extended properties событий календаря
const (
	TagBookingSource    = "bookingSource"
	TagBookingReference = "bookingReference"
	TagStripeSessionID  = "stripeSessionId"
)

// Источники бронирования
const (
	SourceWebsiteNoDeposit = "website_no_deposit"
	SourceWebsiteDeposit   = "website_deposit"
)
