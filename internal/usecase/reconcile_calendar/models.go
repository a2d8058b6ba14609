package reconcile_calendar

import "github.com/m04kA/SMC-DetailingBooking/internal/domain"

// Overlap пара событий, которые пересекаются с учетом буфера на дорогу
type Overlap struct {
	First  domain.CalendarEntry
	Second domain.CalendarEntry
}

// Key стабильный ключ пары для журнала
func (o Overlap) Key() string {
	return "overlap:" + o.First.ID + ":" + o.Second.ID
}

// Response итог прохода сверки
type Response struct {
	EventsScanned  int
	Overlaps       []Overlap
	PendingEntries int
}
