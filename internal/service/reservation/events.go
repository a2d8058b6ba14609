package reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// buildDirectEvent событие для бронирования без предоплаты
func buildDirectEvent(req *domain.ReservationRequest, reference, timeZone string) *domain.CalendarEvent {
	contact := req.Contact

	lines := []string{
		"Pack: " + req.Pack,
		"Véhicule: " + contact.VehicleModel,
		"Téléphone: " + contact.Phone,
		"Adresse: " + contact.FullAddress(),
	}
	if notes := strings.TrimSpace(contact.Notes); notes != "" {
		lines = append(lines, "Informations complémentaires: "+notes)
	}
	lines = append(lines,
		"Référence: "+reference,
		"Source: site vitrine (sans acompte)",
	)

	return &domain.CalendarEvent{
		Summary:     fmt.Sprintf("Réservation - %s - %s", req.Pack, contact.VehicleModel),
		Description: strings.Join(lines, "\n"),
		Location:    contact.FullAddress(),
		Start:       req.Start,
		End:         req.End(),
		TimeZone:    timeZone,
		Tags: map[string]string{
			domain.TagBookingSource:    domain.SourceWebsiteNoDeposit,
			domain.TagBookingReference: reference,
		},
	}
}

// buildPaidEvent событие для бронирования после оплаты аванса; помечено идентификатором транзакции
func buildPaidEvent(req *domain.ReservationRequest, transactionID, timeZone string) *domain.CalendarEvent {
	contact := req.Contact

	lines := []string{
		"Pack: " + req.Pack,
		"Véhicule: " + contact.VehicleModel,
		"Téléphone: " + contact.Phone,
		"Adresse: " + contact.FullAddress(),
		"Stripe session: " + transactionID,
	}
	if email := strings.TrimSpace(contact.CustomerEmail); email != "" {
		lines = append(lines, "Email client: "+email)
	}
	if notes := strings.TrimSpace(contact.Notes); notes != "" {
		lines = append(lines, "Notes: "+notes)
	}
	lines = append(lines, "Source: site vitrine (acompte payé)")

	return &domain.CalendarEvent{
		Summary:     fmt.Sprintf("%s - %s", req.Pack, contact.VehicleModel),
		Description: strings.Join(lines, "\n"),
		Location:    contact.FullAddress(),
		Start:       req.Start,
		End:         req.End(),
		TimeZone:    timeZone,
		Tags: map[string]string{
			domain.TagStripeSessionID:  transactionID,
			domain.TagBookingSource:    domain.SourceWebsiteDeposit,
			domain.TagBookingReference: transactionID,
		},
	}
}
