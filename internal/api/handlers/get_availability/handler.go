package get_availability

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-DetailingBooking/internal/usecase/get_availability"
)

const (
	msgPackNotBookable = "Pack indisponible à la réservation."
	msgNotConfigured   = "Configuration Google Calendar manquante."
	msgUpstream        = "Impossible de recuperer les disponibilites Google Agenda. Merci de réessayer."
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?pack=Pack%20Confort
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pack := strings.TrimSpace(r.URL.Query().Get("pack"))

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Pack: pack})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput), errors.Is(err, getAvailability.ErrPackNotBookable):
			h.logger.Warn("GET /availability - Pack not bookable: pack=%q", pack)
			handlers.RespondBadRequest(w, msgPackNotBookable)

		case errors.Is(err, getAvailability.ErrNotConfigured):
			h.logger.Error("GET /availability - Calendar not configured: %v", err)
			handlers.RespondServiceUnavailable(w, msgNotConfigured)

		case errors.Is(err, getAvailability.ErrUpstream):
			h.logger.Error("GET /availability - Calendar unavailable: pack=%q, error=%v", pack, err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("GET /availability - Failed to build availability: pack=%q, error=%v", pack, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability built: pack=%q, days=%d, slots=%d",
		pack, len(result.Days), result.SlotsCount())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
