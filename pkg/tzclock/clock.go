// Package tzclock переводит локальное время заданного часового пояса в абсолютные моменты и
// обратно, не завися от часового пояса хоста.
package tzclock

import (
	"fmt"
	"time"
	_ "time/tzdata" // база поясов встроена: контейнер может не иметь zoneinfo
)

// maxIterations достаточно: смещения кусочно-постоянны, итерация сходится за 1-2 шага
// везде, кроме разрыва перевода часов.
const maxIterations = 4

// LocalParts локальные дата и время с точностью до минуты
type LocalParts struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// asUTC трактует локальные части как UTC (без смещения)
func (p LocalParts) asUTC() time.Time {
	return time.Date(p.Year, p.Month, p.Day, p.Hour, p.Minute, 0, 0, time.UTC)
}

// Clock часы, привязанные к IANA часовому поясу
type Clock struct {
	name string
	loc  *time.Location
}

// New создает часы для часового пояса name (например, "Europe/Brussels")
func New(name string) (*Clock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tzclock: unknown time zone %q: %w", name, err)
	}
	return &Clock{name: name, loc: loc}, nil
}

// MustNew как New, но паникует на неизвестном поясе
func MustNew(name string) *Clock {
	c, err := New(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Name имя часового пояса
func (c *Clock) Name() string {
	return c.name
}

// Location часовой пояс
func (c *Clock) Location() *time.Location {
	return c.loc
}

// LocalToInstant возвращает момент, локальное представление которого совпадает с запрошенным.
// Переполнение полей нормализуется (день 32 -> следующий месяц).
//
// Итерация неподвижной точки: берем запрошенное время как UTC, смотрим, какое локальное время
// соответствует догадке, сдвигаем догадку на разницу. Для времени внутри весеннего разрыва
// результатом будет ближайший существующий момент.
func (c *Clock) LocalToInstant(year int, month time.Month, day, hour, minute int) time.Time {
	target := LocalParts{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}.asUTC()
	guess := target

	for i := 0; i < maxIterations; i++ {
		local := c.InstantToLocalParts(guess).asUTC()
		diff := target.Sub(local)
		if diff == 0 {
			break
		}
		guess = guess.Add(diff)
	}

	return guess
}

// InstantToLocalParts раскладывает момент на локальные части
func (c *Clock) InstantToLocalParts(t time.Time) LocalParts {
	local := t.In(c.loc)
	return LocalParts{
		Year:   local.Year(),
		Month:  local.Month(),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
	}
}

// DateKey локальная дата в формате YYYY-MM-DD
func (c *Clock) DateKey(t time.Time) string {
	return t.In(c.loc).Format("2006-01-02")
}

// DayLabel подпись дня для клиента, например "samedi 17 octobre"
func (c *Clock) DayLabel(t time.Time) string {
	local := t.In(c.loc)
	return fmt.Sprintf("%s %02d %s", weekdaysFR[local.Weekday()], local.Day(), monthsFR[local.Month()-1])
}

// TimeLabel локальное время "HH:MM"
func (c *Clock) TimeLabel(t time.Time) string {
	return t.In(c.loc).Format("15:04")
}

// RangeLabel подпись интервала "08:00 - 09:30"
func (c *Clock) RangeLabel(start, end time.Time) string {
	return c.TimeLabel(start) + " - " + c.TimeLabel(end)
}

var weekdaysFR = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var monthsFR = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}
