package get_availability

import (
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/pkg/tzclock"
)

// buildAvailability строит список дней со свободными слотами длительности duration.
//
// Слоты идут с шагом policy.SlotStep от открытия дня, целиком помещаются до закрытия,
// начинаются не раньше now+MinNotice и не пересекаются с занятыми интервалами, продленными
// на транзитный буфер. Слот, задевающий занятый интервал, пропускается, а не обрезается.
// Просмотр останавливается, когда набрано MaxDaysReturned дней.
func buildAvailability(
	now time.Time,
	clock *tzclock.Clock,
	policy domain.SchedulePolicy,
	duration time.Duration,
	busy []domain.BusyRange,
) []domain.Day {
	minStart := now.Add(policy.MinNotice())
	step := policy.SlotStep()
	buffered := domain.WithTransitBuffer(busy, policy.TransitBuffer())
	today := clock.InstantToLocalParts(now)

	days := make([]domain.Day, 0, policy.MaxDaysReturned)

	for i := 0; i <= policy.LookaheadDays; i++ {
		year, month, day := localDate(today, i)
		openAt := clock.LocalToInstant(year, month, day, policy.OpenHour, 0)
		closeAt := clock.LocalToInstant(year, month, day, policy.CloseHour, 0)

		var slots []domain.Slot
		for cursor := openAt; !cursor.Add(duration).After(closeAt); cursor = cursor.Add(step) {
			if cursor.Before(minStart) {
				continue
			}

			end := cursor.Add(duration)
			if domain.OverlapsAny(cursor, end, buffered) {
				continue
			}

			slots = append(slots, domain.Slot{
				Start: cursor,
				End:   end,
				Label: clock.RangeLabel(cursor, end),
			})
		}

		if len(slots) > 0 {
			days = append(days, domain.Day{
				DateKey: clock.DateKey(openAt),
				Label:   clock.DayLabel(openAt),
				Slots:   slots,
			})
		}

		if len(days) >= policy.MaxDaysReturned {
			break
		}
	}

	return days
}

// localDate календарная дата today+offset дней без привязки к часовому поясу
func localDate(today tzclock.LocalParts, offset int) (int, time.Month, int) {
	return time.Date(today.Year, today.Month, today.Day+offset, 12, 0, 0, 0, time.UTC).Date()
}

// busyWindow интервал чтения календаря: от now-буфер (буфер прошедшего события может
// закрывать ближайшие слоты) до локальной полуночи после последнего дня просмотра
func busyWindow(now time.Time, clock *tzclock.Clock, policy domain.SchedulePolicy) (time.Time, time.Time) {
	year, month, day := localDate(clock.InstantToLocalParts(now), policy.LookaheadDays+1)
	return now.Add(-policy.TransitBuffer()), clock.LocalToInstant(year, month, day, 0, 0)
}
