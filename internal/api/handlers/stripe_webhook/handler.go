package stripe_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/stripecheckout"
	confirmPayment "github.com/m04kA/SMC-DetailingBooking/internal/usecase/confirm_payment"
)

// maxBodyBytes события Stripe заметно меньше 1 МиБ
const maxBodyBytes = 1 << 20

const (
	msgMissingSignature = "Signature Stripe manquante"
	msgInvalidSignature = "Signature Stripe invalide"
	msgBodyTooLarge     = "Requête trop volumineuse"
	msgNotConfigured    = "STRIPE_WEBHOOK_SECRET manquante"
	msgRetry            = "Réservation non enregistrée, nouvel essai attendu"
)

// AckResponse ответ провайдеру оплаты
type AckResponse struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome"`
}

type Handler struct {
	verifier WebhookVerifier
	useCase  ConfirmPaymentUseCase
	logger   Logger
}

func NewHandler(verifier WebhookVerifier, useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		verifier: verifier,
		useCase:  useCase,
		logger:   logger,
	}
}

// Handle POST /api/v1/webhooks/stripe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		h.logger.Warn("POST /webhooks/stripe - Missing signature")
		handlers.RespondBadRequest(w, msgMissingSignature)
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Failed to read body: %v", err)
		handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return
	}

	event, err := h.verifier.Verify(payload, signature)
	if err != nil {
		switch {
		case errors.Is(err, stripecheckout.ErrNotConfigured):
			h.logger.Error("POST /webhooks/stripe - Webhook secret not configured")
			handlers.RespondServiceUnavailable(w, msgNotConfigured)
		default:
			h.logger.Warn("POST /webhooks/stripe - Rejected event: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSignature)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{Event: event})
	if err != nil {
		// 5xx: Stripe повторит доставку, повтор идемпотентен
		h.logger.Error("POST /webhooks/stripe - Event id=%s not applied, redelivery expected: %v", event.ID, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgRetry)
		return
	}

	h.logger.Info("POST /webhooks/stripe - Event id=%s, type=%s, outcome=%s", event.ID, event.Type, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, AckResponse{Received: true, Outcome: result.Outcome})
}
