package stripe_webhook

import (
	"context"

	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/stripecheckout"
	confirmPayment "github.com/m04kA/SMC-DetailingBooking/internal/usecase/confirm_payment"
)

type WebhookVerifier interface {
	Verify(payload []byte, signature string) (*stripecheckout.Event, error)
}

type ConfirmPaymentUseCase interface {
	Execute(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
