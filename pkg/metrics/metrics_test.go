package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New("detailing")

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/availability", "200", 20*time.Millisecond)
	m.ObserveCalendarCall("freebusy", time.Second, nil)
	m.ObserveCalendarCall("freebusy", time.Second, errors.New("timeout"))
	m.ObserveReservation("direct", "committed")
	m.ObserveReservation("direct", "conflict")
	m.ObserveReservation("direct", "conflict")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/availability", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalendarCallErrors.WithLabelValues("freebusy")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues("direct", "conflict")))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		New("detailing")
		New("detailing")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("detailing")
	m.ObserveSlotsOffered(42)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "detailing_availability_slots_offered")
}
