package confirm_payment

import (
	"context"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// ReservationGuard идемпотентное резервирование по идентификатору транзакции
type ReservationGuard interface {
	ReserveForTransaction(ctx context.Context, transactionID string, req *domain.ReservationRequest) (*domain.Reservation, error)
}

// Journal журнал сверки оплаченных бронирований
type Journal interface {
	Record(ctx context.Context, entry *domain.ReconciliationEntry) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
