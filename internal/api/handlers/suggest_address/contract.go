package suggest_address

import (
	"context"

	suggestAddress "github.com/m04kA/SMC-DetailingBooking/internal/usecase/suggest_address"
)

type SuggestAddressUseCase interface {
	Execute(ctx context.Context, req *suggestAddress.Request) *suggestAddress.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
