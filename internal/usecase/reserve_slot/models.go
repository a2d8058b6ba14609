package reserve_slot

import (
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Request модель запроса на бронирование без предоплаты
type Request struct {
	Pack    string                // Идентификатор пакета
	Start   time.Time             // Начало выбранного слота
	Contact domain.ContactDetails // Контактные данные и адрес
}

// Response модель ответа с созданным бронированием
type Response struct {
	EventID   string
	Reference string
	Start     time.Time
	End       time.Time
}
