package reconcile_calendar

import "errors"

var (
	// ErrUpstream возвращается, когда события календаря не удалось прочитать
	ErrUpstream = errors.New("reconcile_calendar: calendar unavailable")
	// ErrEntryNotFound открытой записи с таким идентификатором нет
	ErrEntryNotFound = errors.New("reconcile_calendar: entry not found")
	// ErrJournal журнал недоступен
	ErrJournal = errors.New("reconcile_calendar: journal unavailable")
)
