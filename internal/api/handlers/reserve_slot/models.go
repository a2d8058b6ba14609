package reserve_slot

import (
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	reserveSlot "github.com/m04kA/SMC-DetailingBooking/internal/usecase/reserve_slot"
)

const msgReserved = "Réservation envoyée. Vous recevrez une confirmation rapidement."

// ReservationResponse HTTP response model
type ReservationResponse struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func ToUseCaseRequest(form *handlers.BookingForm) (*reserveSlot.Request, error) {
	start, err := form.ParseTimeSlot()
	if err != nil {
		return nil, err
	}

	return &reserveSlot.Request{
		Pack:    form.Pack,
		Start:   start,
		Contact: form.Contact(),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *ReservationResponse {
	return &ReservationResponse{
		OK:        true,
		Message:   msgReserved,
		Reference: resp.Reference,
		Start:     resp.Start.UTC().Format(time.RFC3339),
		End:       resp.End.UTC().Format(time.RFC3339),
	}
}
