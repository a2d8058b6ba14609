package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// BookingForm тело запроса формы бронирования (с предоплатой и без)
type BookingForm struct {
	Pack          string `json:"pack"`
	VehicleModel  string `json:"vehicleModel"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	HouseNumber   string `json:"houseNumber"`
	Date          string `json:"date,omitempty"`          // YYYY-MM-DD, только для отображения
	TimeSlot      string `json:"timeSlot"`                // RFC3339, начало слота
	TimeSlotLabel string `json:"timeSlotLabel,omitempty"` // "08:00 - 09:30", только для отображения
	Notes         string `json:"notes,omitempty"`
}

// ParseTimeSlot разбирает начало слота; пустое значение дает нулевое время
func (f *BookingForm) ParseTimeSlot() (time.Time, error) {
	raw := strings.TrimSpace(f.TimeSlot)
	if raw == "" {
		return time.Time{}, nil
	}
	start, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeSlot %q is not RFC3339: %w", raw, err)
	}
	return start, nil
}

// Contact контактные данные из формы
func (f *BookingForm) Contact() domain.ContactDetails {
	return domain.ContactDetails{
		VehicleModel: f.VehicleModel,
		Phone:        f.Phone,
		Address:      f.Address,
		HouseNumber:  f.HouseNumber,
		Notes:        f.Notes,
	}
}
