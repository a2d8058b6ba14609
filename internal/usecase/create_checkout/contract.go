package create_checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/stripecheckout"
)

// SlotChecker проверяет свободу слота без создания события
type SlotChecker interface {
	EnsureFree(ctx context.Context, start time.Time, duration time.Duration) error
}

// CheckoutProvider создает сессию оплаты аванса
type CheckoutProvider interface {
	CreateDepositSession(ctx context.Context, deposit *stripecheckout.DepositSession) (*stripecheckout.Session, error)
}

// Clock форматирует локальные подписи слота
type Clock interface {
	DateKey(t time.Time) string
	RangeLabel(start, end time.Time) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
