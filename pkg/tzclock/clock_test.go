package tzclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnknownZone(t *testing.T) {
	_, err := New("Europe/Atlantis")
	require.Error(t, err)
}

func TestLocalToInstant(t *testing.T) {
	clock := MustNew("Europe/Brussels")

	tests := []struct {
		name     string
		parts    LocalParts
		expected time.Time
	}{
		{
			name:     "summer time",
			parts:    LocalParts{2026, time.June, 1, 8, 0},
			expected: time.Date(2026, 6, 1, 6, 0, 0, 0, time.UTC),
		},
		{
			name:     "winter time",
			parts:    LocalParts{2026, time.January, 15, 8, 0},
			expected: time.Date(2026, 1, 15, 7, 0, 0, 0, time.UTC),
		},
		{
			name:     "day overflow is normalized",
			parts:    LocalParts{2026, time.October, 32, 0, 0},
			expected: time.Date(2026, 10, 31, 23, 0, 0, 0, time.UTC),
		},
		{
			name:     "spring gap resolves to nearest valid instant",
			parts:    LocalParts{2026, time.March, 29, 2, 30},
			expected: time.Date(2026, 3, 29, 1, 30, 0, 0, time.UTC),
		},
		{
			name:     "autumn ambiguous hour",
			parts:    LocalParts{2026, time.October, 25, 2, 30},
			expected: time.Date(2026, 10, 25, 1, 30, 0, 0, time.UTC),
		},
		{
			name:     "midnight after spring change",
			parts:    LocalParts{2026, time.March, 30, 0, 0},
			expected: time.Date(2026, 3, 29, 22, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clock.LocalToInstant(tt.parts.Year, tt.parts.Month, tt.parts.Day, tt.parts.Hour, tt.parts.Minute)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestLocalToInstant_IndependentOfHostZone(t *testing.T) {
	clock := MustNew("Europe/Brussels")
	original := time.Local
	defer func() { time.Local = original }()

	time.Local = time.FixedZone("host", -7*3600)
	got := clock.LocalToInstant(2026, time.June, 1, 8, 0)

	assert.True(t, time.Date(2026, 6, 1, 6, 0, 0, 0, time.UTC).Equal(got))
}

func TestRoundTrip(t *testing.T) {
	clock := MustNew("Europe/Brussels")
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	ambiguous := 0
	for instant := start; instant.Before(end); instant = instant.Add(30 * time.Minute) {
		parts := clock.InstantToLocalParts(instant)
		back := clock.LocalToInstant(parts.Year, parts.Month, parts.Day, parts.Hour, parts.Minute)

		// локальное время всегда восстанавливается
		require.Equal(t, parts, clock.InstantToLocalParts(back), "instant %s", instant)
		if !back.Equal(instant) {
			ambiguous++
		}
	}

	// только повторяющийся час 25 октября (02:00 и 02:30 летнего времени)
	assert.Equal(t, 2, ambiguous)
}

func TestLabels(t *testing.T) {
	clock := MustNew("Europe/Brussels")
	instant := time.Date(2026, 10, 17, 6, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-10-17", clock.DateKey(instant))
	assert.Equal(t, "samedi 17 octobre", clock.DayLabel(instant))
	assert.Equal(t, "08:00", clock.TimeLabel(instant))
	assert.Equal(t, "08:00 - 09:30", clock.RangeLabel(instant, instant.Add(90*time.Minute)))

	// поздний вечер по UTC уже следующий день по Брюсселю
	late := time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-18", clock.DateKey(late))
	assert.Equal(t, "dimanche 18 octobre", clock.DayLabel(late))
}
