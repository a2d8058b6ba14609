package create_checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	createCheckout "github.com/m04kA/SMC-DetailingBooking/internal/usecase/create_checkout"
)

const (
	msgInvalidRequestBody = "Formulaire incomplet."
	msgPackNotBookable    = "Pack indisponible à la réservation."
	msgInvalidSlot        = "Créneau invalide."
	msgSlotConflict       = "Ce créneau vient d'être réservé. Merci de choisir une autre heure disponible."
	msgNotConfigured      = "Configuration du paiement indisponible."
	msgUpstream           = "Impossible de creer la session Stripe."
)

type Handler struct {
	useCase CreateCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var form handlers.BookingForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("POST /checkout-sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := ToUseCaseRequest(&form)
	if err != nil {
		h.logger.Warn("POST /checkout-sessions - Invalid time slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createCheckout.ErrInvalidInput):
			h.logger.Warn("POST /checkout-sessions - Incomplete form: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createCheckout.ErrPackNotBookable):
			h.logger.Warn("POST /checkout-sessions - Pack not bookable: pack=%q", form.Pack)
			handlers.RespondBadRequest(w, msgPackNotBookable)

		case errors.Is(err, createCheckout.ErrInvalidSlot):
			h.logger.Warn("POST /checkout-sessions - Invalid slot: time_slot=%q", form.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createCheckout.ErrSlotConflict):
			h.logger.Warn("POST /checkout-sessions - Slot conflict: pack=%q, time_slot=%q", form.Pack, form.TimeSlot)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createCheckout.ErrNotConfigured):
			h.logger.Error("POST /checkout-sessions - Not configured: %v", err)
			handlers.RespondServiceUnavailable(w, msgNotConfigured)

		case errors.Is(err, createCheckout.ErrUpstream):
			h.logger.Error("POST /checkout-sessions - Upstream failure: pack=%q, error=%v", form.Pack, err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("POST /checkout-sessions - Failed to create session: pack=%q, error=%v", form.Pack, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout-sessions - Session created: session_id=%s", result.SessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
