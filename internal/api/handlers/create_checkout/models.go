package create_checkout

import (
	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	createCheckout "github.com/m04kA/SMC-DetailingBooking/internal/usecase/create_checkout"
)

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
	SessionID   string `json:"sessionId"`
	Deposit     string `json:"deposit"` // "24.00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func ToUseCaseRequest(form *handlers.BookingForm) (*createCheckout.Request, error) {
	start, err := form.ParseTimeSlot()
	if err != nil {
		return nil, err
	}

	return &createCheckout.Request{
		Pack:    form.Pack,
		Start:   start,
		Contact: form.Contact(),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCheckout.Response) *CheckoutResponse {
	return &CheckoutResponse{
		CheckoutURL: resp.CheckoutURL,
		SessionID:   resp.SessionID,
		Deposit:     domain.CentsToEuros(resp.DepositCents),
	}
}
