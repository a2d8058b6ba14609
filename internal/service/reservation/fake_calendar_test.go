package reservation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/googlecalendar"
)

type fakeEvent struct {
	id    string
	start time.Time
	end   time.Time
	event *domain.CalendarEvent
}

// fakeCalendar календарь в памяти с тем же контрактом, что и googlecalendar.Client
type fakeCalendar struct {
	mu        sync.Mutex
	events    []fakeEvent
	busyErr   error
	findErr   error
	createErr error

	busyCalls   int
	createCalls int
	lastFrom    time.Time
	lastTo      time.Time
}

func (f *fakeCalendar) addBusy(start, end time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, fakeEvent{id: fmt.Sprintf("seed-%d", len(f.events)+1), start: start, end: end})
}

func (f *fakeCalendar) GetBusyRanges(_ context.Context, _ string, from, to time.Time) ([]domain.BusyRange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.busyCalls++
	f.lastFrom, f.lastTo = from, to
	if f.busyErr != nil {
		return nil, f.busyErr
	}

	var ranges []domain.BusyRange
	for _, e := range f.events {
		if domain.Overlaps(e.start, e.end, from, to) {
			ranges = append(ranges, domain.BusyRange{Start: e.start, End: e.end})
		}
	}
	return ranges, nil
}

func (f *fakeCalendar) FindEventByTag(_ context.Context, _ string, key, value string, from, to time.Time) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return "", f.findErr
	}
	for _, e := range f.events {
		if e.event == nil || e.event.Tags[key] != value {
			continue
		}
		if domain.Overlaps(e.start, e.end, from, to) {
			return e.id, nil
		}
	}
	return "", googlecalendar.ErrEventNotFound
}

func (f *fakeCalendar) CreateEvent(_ context.Context, _ string, event *domain.CalendarEvent) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++
	if f.createErr != nil {
		return "", f.createErr
	}
	id := fmt.Sprintf("evt-%d", len(f.events)+1)
	f.events = append(f.events, fakeEvent{id: id, start: event.Start, end: event.End, event: event})
	return id, nil
}

func (f *fakeCalendar) created() []fakeEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []fakeEvent
	for _, e := range f.events {
		if e.event != nil {
			out = append(out, e)
		}
	}
	return out
}

type fixedTime struct {
	now time.Time
}

func (p *fixedTime) Now() time.Time {
	return p.now
}
