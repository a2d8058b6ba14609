package reserve_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	reserveSlot "github.com/m04kA/SMC-DetailingBooking/internal/usecase/reserve_slot"
)

const (
	msgInvalidRequestBody = "Formulaire incomplet."
	msgPackNotBookable    = "Pack indisponible à la réservation."
	msgInvalidSlot        = "Créneau invalide."
	msgSlotConflict       = "Ce créneau vient d'être réservé. Merci de choisir une autre heure disponible."
	msgNotConfigured      = "Configuration Google Calendar manquante."
	msgUpstream           = "Impossible d'enregistrer la réservation dans Google Agenda. Merci de réessayer."
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var form handlers.BookingForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := ToUseCaseRequest(&form)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid time slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Incomplete form: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, reserveSlot.ErrPackNotBookable):
			h.logger.Warn("POST /reservations - Pack not bookable: pack=%q", form.Pack)
			handlers.RespondBadRequest(w, msgPackNotBookable)

		case errors.Is(err, reserveSlot.ErrInvalidSlot):
			h.logger.Warn("POST /reservations - Invalid slot: time_slot=%q", form.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, reserveSlot.ErrSlotConflict):
			h.logger.Warn("POST /reservations - Slot conflict: pack=%q, time_slot=%q", form.Pack, form.TimeSlot)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, reserveSlot.ErrNotConfigured):
			h.logger.Error("POST /reservations - Calendar not configured: %v", err)
			handlers.RespondServiceUnavailable(w, msgNotConfigured)

		case errors.Is(err, reserveSlot.ErrUpstream):
			h.logger.Error("POST /reservations - Calendar unavailable: pack=%q, time_slot=%q, error=%v", form.Pack, form.TimeSlot, err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("POST /reservations - Failed to reserve: pack=%q, time_slot=%q, error=%v", form.Pack, form.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reference=%s, event_id=%s", result.Reference, result.EventID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
