package reserve_slot

import (
	"context"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// ReservationGuard сервис резервирования с повторной проверкой слота
type ReservationGuard interface {
	Reserve(ctx context.Context, req *domain.ReservationRequest) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
