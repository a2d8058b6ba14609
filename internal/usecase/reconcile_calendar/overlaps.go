package reconcile_calendar

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// findOverlaps возвращает пары событий, где второе начинается раньше, чем закончится
// первое вместе с буфером. Тот же тест, что и при проверке слота перед бронированием.
func findOverlaps(entries []domain.CalendarEntry, buffer time.Duration) []Overlap {
	sorted := make([]domain.CalendarEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var overlaps []Overlap
	for i := range sorted {
		blockedUntil := sorted[i].End.Add(buffer)
		for j := i + 1; j < len(sorted); j++ {
			// отсортировано по началу: дальше пересечений с i нет
			if !sorted[j].Start.Before(blockedUntil) {
				break
			}
			overlaps = append(overlaps, Overlap{First: sorted[i], Second: sorted[j]})
		}
	}

	return overlaps
}
