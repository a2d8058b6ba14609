package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса со своим реестром
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	CalendarCallDuration *prometheus.HistogramVec
	CalendarCallErrors   *prometheus.CounterVec

	ReservationsTotal *prometheus.CounterVec
	SlotsOffered      prometheus.Histogram
}

// New создает и регистрирует метрики. serviceName используется как namespace.
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		CalendarCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "calendar_call_duration_seconds",
				Help:      "External calendar call duration in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),
		CalendarCallErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "calendar_call_errors_total",
				Help:      "Failed external calendar calls",
			},
			[]string{"operation"},
		),
		ReservationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "reservations_total",
				Help:      "Reservation attempts by path and outcome",
			},
			[]string{"path", "outcome"},
		),
		SlotsOffered: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "availability_slots_offered",
				Help:      "Number of slots returned by one availability query",
				Buckets:   []float64{0, 10, 25, 50, 100, 200, 400},
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CalendarCallDuration,
		m.CalendarCallErrors,
		m.ReservationsTotal,
		m.SlotsOffered,
	)

	return m
}

// Handler HTTP обработчик для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry реестр метрик (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveCalendarCall фиксирует вызов внешнего календаря
func (m *Metrics) ObserveCalendarCall(operation string, duration time.Duration, err error) {
	m.CalendarCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.CalendarCallErrors.WithLabelValues(operation).Inc()
	}
}

// ObserveReservation фиксирует исход резервирования
func (m *Metrics) ObserveReservation(path, outcome string) {
	m.ReservationsTotal.WithLabelValues(path, outcome).Inc()
}

// ObserveSlotsOffered фиксирует размер выдачи доступности
func (m *Metrics) ObserveSlotsOffered(count int) {
	m.SlotsOffered.Observe(float64(count))
}
