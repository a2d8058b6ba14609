package confirm_payment

import "github.com/m04kA/SMC-DetailingBooking/internal/integrations/stripecheckout"

// Исходы обработки события оплаты
const (
	OutcomeIgnored   = "ignored"   // событие другого типа или оплата не завершена
	OutcomeReserved  = "reserved"  // событие в календаре создано
	OutcomeExisting  = "existing"  // событие уже было создано раньше
	OutcomeJournaled = "journaled" // создать событие невозможно, запись в журнале сверки
)

// Request проверенное событие вебхука
type Request struct {
	Event *stripecheckout.Event
}

// Response результат обработки
type Response struct {
	Outcome   string
	EventID   string
	SessionID string
}
