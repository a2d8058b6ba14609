package googlecalendar

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
	"github.com/m04kA/SMC-DetailingBooking/pkg/metrics"
)

const testCalendarID = "primary"

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) (*Client, *metrics.Metrics) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := metrics.New("test")
	client, err := NewClient(context.Background(), timeout, m, logger.NewNop(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return client, m
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestGetBusyRanges(t *testing.T) {
	var requested map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/freeBusy"), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&requested))

		writeJSON(t, w, http.StatusOK, map[string]interface{}{
			"calendars": map[string]interface{}{
				testCalendarID: map[string]interface{}{
					"busy": []map[string]string{
						{"start": "2026-10-19T12:00:00Z", "end": "2026-10-19T13:30:00Z"},
						{"start": "2026-10-19T07:00:00+02:00", "end": "2026-10-19T08:00:00+02:00"},
					},
				},
			},
		})
	}, time.Second)

	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	ranges, err := client.GetBusyRanges(context.Background(), testCalendarID, from, to)
	require.NoError(t, err)
	require.Len(t, ranges, 2)

	assert.True(t, ranges[0].Start.Equal(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)))
	assert.True(t, ranges[1].End.Equal(time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-10-19T00:00:00Z", requested["timeMin"])
	assert.Equal(t, "2026-10-20T00:00:00Z", requested["timeMax"])
}

func TestGetBusyRanges_MalformedRange(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]interface{}{
			"calendars": map[string]interface{}{
				testCalendarID: map[string]interface{}{
					"busy": []map[string]string{{"start": "not-a-date", "end": "2026-10-19T13:30:00Z"}},
				},
			},
		})
	}, time.Second)

	_, err := client.GetBusyRanges(context.Background(), testCalendarID, time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalendarCallErrors.WithLabelValues(opFreeBusy)))
}

func TestGetBusyRanges_CalendarError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]interface{}{
			"calendars": map[string]interface{}{
				testCalendarID: map[string]interface{}{
					"errors": []map[string]string{{"domain": "global", "reason": "notFound"}},
				},
			},
		})
	}, time.Second)

	_, err := client.GetBusyRanges(context.Background(), testCalendarID, time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetBusyRanges_Timeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 50*time.Millisecond)

	_, err := client.GetBusyRanges(context.Background(), testCalendarID, time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetBusyRanges_Forbidden(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, map[string]interface{}{
			"error": map[string]interface{}{"code": 403, "message": "forbidden"},
		})
	}, time.Second)

	_, err := client.GetBusyRanges(context.Background(), testCalendarID, time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFindEventByTag(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/events"), r.URL.Path)
		assert.Equal(t, "stripeSessionId=cs_test_1", r.URL.Query().Get("privateExtendedProperty"))
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))

		writeJSON(t, w, http.StatusOK, map[string]interface{}{
			"items": []map[string]interface{}{{"id": "evt-1"}},
		})
	}, time.Second)

	start := time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC)
	id, err := client.FindEventByTag(context.Background(), testCalendarID, domain.TagStripeSessionID, "cs_test_1", start, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "evt-1", id)
}

func TestFindEventByTag_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]interface{}{"items": []interface{}{}})
	}, time.Second)

	_, err := client.FindEventByTag(context.Background(), testCalendarID, "k", "v", time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCreateEvent(t *testing.T) {
	var received map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &received))

		writeJSON(t, w, http.StatusOK, map[string]interface{}{"id": "evt-new"})
	}, time.Second)

	start := time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC)
	id, err := client.CreateEvent(context.Background(), testCalendarID, &domain.CalendarEvent{
		Summary:  "Réservation - Pack Confort - Golf 7",
		Location: "Rue du Pont 12",
		Start:    start,
		End:      start.Add(150 * time.Minute),
		TimeZone: "Europe/Brussels",
		Tags:     map[string]string{domain.TagBookingSource: domain.SourceWebsiteNoDeposit},
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-new", id)

	startField := received["start"].(map[string]interface{})
	assert.Equal(t, "2026-10-20T08:00:00Z", startField["dateTime"])
	assert.Equal(t, "Europe/Brussels", startField["timeZone"])

	private := received["extendedProperties"].(map[string]interface{})["private"].(map[string]interface{})
	assert.Equal(t, domain.SourceWebsiteNoDeposit, private[domain.TagBookingSource])
}

func TestListEvents_SkipsAllDay(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]interface{}{
			"items": []map[string]interface{}{
				{
					"id":    "a",
					"start": map[string]string{"dateTime": "2026-10-20T08:00:00Z"},
					"end":   map[string]string{"dateTime": "2026-10-20T09:30:00Z"},
				},
				{
					"id":    "holiday",
					"start": map[string]string{"date": "2026-10-21"},
					"end":   map[string]string{"date": "2026-10-22"},
				},
			},
		})
	}, time.Second)

	entries, err := client.ListEvents(context.Background(), testCalendarID, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, 90*time.Minute, entries[0].End.Sub(entries[0].Start))
}

func TestDisabledClient(t *testing.T) {
	client := NewDisabledClient("GOOGLE_CALENDAR_ID is empty")

	_, err := client.GetBusyRanges(context.Background(), testCalendarID, time.Now(), time.Now())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "GOOGLE_CALENDAR_ID")

	_, err = client.CreateEvent(context.Background(), testCalendarID, &domain.CalendarEvent{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
