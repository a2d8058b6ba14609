package reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Calendar внешний календарь - единственный источник правды о занятости
type Calendar interface {
	GetBusyRanges(ctx context.Context, calendarID string, from, to time.Time) ([]domain.BusyRange, error)
	FindEventByTag(ctx context.Context, calendarID, key, value string, from, to time.Time) (string, error)
	CreateEvent(ctx context.Context, calendarID string, event *domain.CalendarEvent) (string, error)
}

// Metrics метрики исходов резервирования
type Metrics interface {
	ObserveReservation(path, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
