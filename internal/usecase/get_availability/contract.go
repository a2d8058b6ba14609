package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Calendar источник занятых интервалов
type Calendar interface {
	GetBusyRanges(ctx context.Context, calendarID string, from, to time.Time) ([]domain.BusyRange, error)
}

// Metrics метрики выдачи доступности
type Metrics interface {
	ObserveSlotsOffered(count int)
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
