package get_availability

import (
	"time"

	getAvailability "github.com/m04kA/SMC-DetailingBooking/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	TimeZone string        `json:"timeZone"`
	Days     []DayResponse `json:"days"`
}

// DayResponse день со свободными слотами
type DayResponse struct {
	DateKey string         `json:"dateKey"`
	Label   string         `json:"label"`
	Slots   []SlotResponse `json:"slots"`
}

// SlotResponse слот, start/end в RFC3339 UTC
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				Start: slot.Start.UTC().Format(time.RFC3339),
				End:   slot.End.UTC().Format(time.RFC3339),
				Label: slot.Label,
			})
		}
		days = append(days, DayResponse{
			DateKey: day.DateKey,
			Label:   day.Label,
			Slots:   slots,
		})
	}

	return &AvailabilityResponse{
		TimeZone: resp.TimeZone,
		Days:     days,
	}
}
