package create_checkout

import (
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Request модель запроса на оплату аванса
type Request struct {
	Pack    string
	Start   time.Time
	Contact domain.ContactDetails
}

// Response модель ответа со ссылкой на оплату
type Response struct {
	CheckoutURL  string
	SessionID    string
	DepositCents int64
}
