package reconcile_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Calendar чтение событий календаря
type Calendar interface {
	ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]domain.CalendarEntry, error)
}

// Journal журнал сверки
type Journal interface {
	Record(ctx context.Context, entry *domain.ReconciliationEntry) error
	ListPending(ctx context.Context, limit uint64) ([]*domain.ReconciliationEntry, error)
	MarkResolved(ctx context.Context, transactionID string, at time.Time) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
