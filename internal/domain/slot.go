package domain

import "time"

// Slot свободный интервал длительностью ровно в одну услугу
type Slot struct {
	Start time.Time
	End   time.Time
	Label string // "08:00 - 09:30" в локальном времени
}

// Duration длительность слота
func (s *Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Day локальный день, в котором есть хотя бы один свободный слот
type Day struct {
	DateKey string // YYYY-MM-DD в часовом поясе бизнеса
	Label   string // "samedi 17 octobre"
	Slots   []Slot
}
