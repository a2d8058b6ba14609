package domain

import (
	"strings"
	"time"
)

// ContactDetails контактные данные и адрес клиента
type ContactDetails struct {
	VehicleModel  string
	Phone         string
	Address       string
	HouseNumber   string
	Notes         string
	CustomerEmail string
}

// FullAddress адрес выезда одной строкой
func (c ContactDetails) FullAddress() string {
	return strings.TrimSpace(c.Address + " " + c.HouseNumber)
}

// ReservationRequest запрос на резервирование слота.
// End всегда вычисляется как Start + длительность пакета.
type ReservationRequest struct {
	Pack     string
	Start    time.Time
	Duration time.Duration
	Contact  ContactDetails
}

// End конец интервала услуги
func (r *ReservationRequest) End() time.Time {
	return r.Start.Add(r.Duration)
}

// Reservation результат успешного резервирования
type Reservation struct {
	EventID   string
	Reference string
	Start     time.Time
	End       time.Time
	Existing  bool // true, если событие уже было создано ранее для той же транзакции
}

// CalendarEvent событие для записи во внешний календарь
type CalendarEvent struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Tags        map[string]string // private extended properties
}

// CalendarEntry уже существующее событие календаря
type CalendarEntry struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
}
