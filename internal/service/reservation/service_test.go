package reservation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/googlecalendar"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
	"github.com/m04kA/SMC-DetailingBooking/pkg/metrics"
	"github.com/m04kA/SMC-DetailingBooking/pkg/tzclock"
)

var brussels = tzclock.MustNew("Europe/Brussels")

// local момент по брюссельскому времени 20 октября 2026
func local(hour, minute int) time.Time {
	return brussels.LocalToInstant(2026, time.October, 20, hour, minute)
}

func newTestGuard(cal *fakeCalendar) (*Guard, *metrics.Metrics) {
	m := metrics.New("test")
	g := NewGuard(cal, "primary", domain.DefaultSchedulePolicy(), m, logger.NewNop())
	g.timeProvider = &fixedTime{now: local(0, 0).Add(-24 * time.Hour)}
	return g, m
}

func newRequest(start time.Time, minutes int) *domain.ReservationRequest {
	return &domain.ReservationRequest{
		Pack:     domain.PackEssentiel,
		Start:    start,
		Duration: time.Duration(minutes) * time.Minute,
		Contact: domain.ContactDetails{
			VehicleModel: "Golf 7",
			Phone:        "+32 470 00 00 00",
			Address:      "Rue du Pont",
			HouseNumber:  "12",
			Notes:        "Portail vert",
		},
	}
}

func TestReserve_Committed(t *testing.T) {
	cal := &fakeCalendar{}
	guard, m := newTestGuard(cal)

	res, err := guard.Reserve(context.Background(), newRequest(local(10, 0), 90))
	require.NoError(t, err)

	assert.NotEmpty(t, res.EventID)
	assert.NotEmpty(t, res.Reference)
	assert.False(t, res.Existing)
	assert.Equal(t, 90*time.Minute, res.End.Sub(res.Start))

	created := cal.created()
	require.Len(t, created, 1)
	event := created[0].event
	assert.Equal(t, domain.SourceWebsiteNoDeposit, event.Tags[domain.TagBookingSource])
	assert.Equal(t, res.Reference, event.Tags[domain.TagBookingReference])
	assert.Equal(t, "Europe/Brussels", event.TimeZone)
	assert.Equal(t, "Rue du Pont 12", event.Location)
	assert.Contains(t, event.Description, "Informations complémentaires: Portail vert")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues(PathDirect, OutcomeCommitted)))
}

// Запрошенный слот совпадает с уже занятым интервалом
func TestReserve_ExactOverlapConflict(t *testing.T) {
	cal := &fakeCalendar{}
	cal.addBusy(local(10, 0), local(11, 30))
	guard, m := newTestGuard(cal)

	_, err := guard.Reserve(context.Background(), newRequest(local(10, 0), 90))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, 0, cal.createCalls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues(PathDirect, OutcomeConflict)))
}

func TestReserve_TransitBuffer(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		conflict bool
	}{
		{name: "inside buffer of earlier job", start: local(10, 30), conflict: true},
		{name: "right after buffer", start: local(11, 0), conflict: false},
		{name: "ends exactly when next job starts", start: local(6, 30), conflict: false},
		{name: "ends inside next job", start: local(7, 0), conflict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := &fakeCalendar{}
			cal.addBusy(local(8, 0), local(10, 0))
			guard, _ := newTestGuard(cal)

			_, err := guard.Reserve(context.Background(), newRequest(tt.start, 90))
			if tt.conflict {
				assert.ErrorIs(t, err, ErrSlotConflict)
				assert.Equal(t, 0, cal.createCalls)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, cal.createCalls)
			}
		})
	}
}

func TestReserve_FetchWindowCoversBuffer(t *testing.T) {
	cal := &fakeCalendar{}
	guard, _ := newTestGuard(cal)

	_, err := guard.Reserve(context.Background(), newRequest(local(10, 0), 90))
	require.NoError(t, err)

	assert.True(t, cal.lastFrom.Equal(local(9, 0)))
	assert.True(t, cal.lastTo.Equal(local(12, 30)))
}

func TestReserve_InvalidSlot(t *testing.T) {
	cal := &fakeCalendar{}
	guard, _ := newTestGuard(cal)
	now := guard.timeProvider.Now()

	tests := []struct {
		name string
		req  *domain.ReservationRequest
	}{
		{name: "zero start", req: newRequest(time.Time{}, 90)},
		{name: "past start", req: newRequest(now.Add(-time.Hour), 90)},
		{name: "start equals now", req: newRequest(now, 90)},
		{name: "non-positive duration", req: newRequest(local(10, 0), 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := guard.Reserve(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidSlot)
		})
	}
	assert.Equal(t, 0, cal.busyCalls)
}

func TestReserve_UpstreamErrorIsNotFree(t *testing.T) {
	cal := &fakeCalendar{busyErr: fmt.Errorf("%w: timeout", googlecalendar.ErrUnavailable)}
	guard, _ := newTestGuard(cal)

	_, err := guard.Reserve(context.Background(), newRequest(local(10, 0), 90))
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, 0, cal.createCalls)
}

func TestReserve_NotConfigured(t *testing.T) {
	guard, _ := newTestGuard(nil)
	guard.calendar = googlecalendar.NewDisabledClient("missing credentials")

	_, err := guard.Reserve(context.Background(), newRequest(local(10, 0), 90))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestReserve_CreateFails(t *testing.T) {
	cal := &fakeCalendar{createErr: fmt.Errorf("%w: status 500", googlecalendar.ErrUnavailable)}
	guard, _ := newTestGuard(cal)

	_, err := guard.Reserve(context.Background(), newRequest(local(10, 0), 90))
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestReserveForTransaction_Idempotent(t *testing.T) {
	cal := &fakeCalendar{}
	guard, m := newTestGuard(cal)
	req := newRequest(local(14, 0), 150)

	first, err := guard.ReserveForTransaction(context.Background(), "cs_test_1", req)
	require.NoError(t, err)
	assert.False(t, first.Existing)

	second, err := guard.ReserveForTransaction(context.Background(), "cs_test_1", req)
	require.NoError(t, err)
	assert.True(t, second.Existing)

	assert.Equal(t, first.EventID, second.EventID)
	assert.Len(t, cal.created(), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues(PathPayment, OutcomeExisting)))

	event := cal.created()[0].event
	assert.Equal(t, "cs_test_1", event.Tags[domain.TagStripeSessionID])
	assert.Equal(t, domain.SourceWebsiteDeposit, event.Tags[domain.TagBookingSource])
	assert.Contains(t, event.Description, "Stripe session: cs_test_1")
}

func TestReserveForTransaction_ConcurrentRedeliveryAfterCommit(t *testing.T) {
	cal := &fakeCalendar{}
	guard, _ := newTestGuard(cal)
	req := newRequest(local(14, 0), 150)

	_, err := guard.ReserveForTransaction(context.Background(), "cs_test_2", req)
	require.NoError(t, err)

	var wg sync.WaitGroup
	ids := make([]string, 5)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := guard.ReserveForTransaction(context.Background(), "cs_test_2", req)
			if assert.NoError(t, err) {
				ids[i] = res.EventID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, cal.created()[0].id, id)
	}
	assert.Len(t, cal.created(), 1)
}

func TestReserveForTransaction_LateDeliveryAccepted(t *testing.T) {
	cal := &fakeCalendar{}
	guard, _ := newTestGuard(cal)
	guard.timeProvider = &fixedTime{now: local(18, 0)}

	_, err := guard.ReserveForTransaction(context.Background(), "cs_late", newRequest(local(10, 0), 90))
	require.NoError(t, err)
	assert.Len(t, cal.created(), 1)
}

func TestReserveForTransaction_ConflictAfterPayment(t *testing.T) {
	cal := &fakeCalendar{}
	cal.addBusy(local(14, 0), local(15, 0))
	guard, _ := newTestGuard(cal)

	_, err := guard.ReserveForTransaction(context.Background(), "cs_taken", newRequest(local(14, 30), 90))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, cal.created())
}

func TestReserveForTransaction_LookupErrorDoesNotCreate(t *testing.T) {
	cal := &fakeCalendar{findErr: fmt.Errorf("%w: status 503", googlecalendar.ErrUnavailable)}
	guard, _ := newTestGuard(cal)

	_, err := guard.ReserveForTransaction(context.Background(), "cs_x", newRequest(local(10, 0), 90))
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, 0, cal.createCalls)
	assert.Equal(t, 0, cal.busyCalls)
}

func TestReserveForTransaction_Validation(t *testing.T) {
	guard, _ := newTestGuard(&fakeCalendar{})

	_, err := guard.ReserveForTransaction(context.Background(), " ", newRequest(local(10, 0), 90))
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = guard.ReserveForTransaction(context.Background(), "cs_1", newRequest(local(10, 0), -30))
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestEnsureFree(t *testing.T) {
	cal := &fakeCalendar{}
	cal.addBusy(local(12, 0), local(13, 0))
	guard, _ := newTestGuard(cal)

	assert.NoError(t, guard.EnsureFree(context.Background(), local(8, 0), 90*time.Minute))
	assert.ErrorIs(t, guard.EnsureFree(context.Background(), local(13, 30), 90*time.Minute), ErrSlotConflict)
	assert.Equal(t, 0, cal.createCalls)
}
