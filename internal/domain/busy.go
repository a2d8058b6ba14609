package domain

import "time"

// BusyRange занятый интервал [Start, End) из внешнего календаря
type BusyRange struct {
	Start time.Time
	End   time.Time
}

// WithTransitBuffer продлевает конец каждого интервала на buffer.
// Исходный срез не изменяется.
func WithTransitBuffer(ranges []BusyRange, buffer time.Duration) []BusyRange {
	buffered := make([]BusyRange, len(ranges))
	for i, r := range ranges {
		buffered[i] = BusyRange{
			Start: r.Start,
			End:   r.End.Add(buffer),
		}
	}
	return buffered
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Интервалы, которые только касаются друг друга, не пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OverlapsAny проверяет пересечение [start, end) хотя бы с одним интервалом
func OverlapsAny(start, end time.Time, ranges []BusyRange) bool {
	for _, r := range ranges {
		if Overlaps(start, end, r.Start, r.End) {
			return true
		}
	}
	return false
}
