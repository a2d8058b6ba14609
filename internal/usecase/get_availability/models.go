package get_availability

import "github.com/m04kA/SMC-DetailingBooking/internal/domain"

// Request модель запроса доступности
type Request struct {
	Pack string // Идентификатор пакета услуг
}

// Response модель ответа с доступными днями
type Response struct {
	TimeZone string       // Часовой пояс, в котором подписаны дни и слоты
	Days     []domain.Day // Дни по возрастанию даты, только дни с хотя бы одним слотом
}

// SlotsCount общее количество слотов в ответе
func (r *Response) SlotsCount() int {
	count := 0
	for _, day := range r.Days {
		count += len(day.Slots)
	}
	return count
}
