package stripecheckout

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// WebhookVerifier проверяет подпись вебхуков Stripe и разбирает нужные события
type WebhookVerifier struct {
	secret string
}

// NewWebhookVerifier создает верификатор; пустой секрет отключает прием вебхуков
func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: strings.TrimSpace(secret)}
}

// Verify проверяет подпись и возвращает событие.
// Для checkout.session.completed заполняет Event.Checkout.
func (v *WebhookVerifier) Verify(payload []byte, signature string) (*Event, error) {
	if v.secret == "" {
		return nil, fmt.Errorf("%w: STRIPE_WEBHOOK_SECRET is empty", ErrNotConfigured)
	}

	evt, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	event := &Event{
		ID:   evt.ID,
		Type: string(evt.Type),
	}

	if event.Type != EventCheckoutCompleted {
		return event, nil
	}
	if evt.Data == nil {
		return nil, fmt.Errorf("%w: event %s has no data", ErrInvalidPayload, evt.ID)
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(evt.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("%w: checkout session: %v", ErrInvalidPayload, err)
	}

	checkout := &CheckoutCompleted{
		SessionID: session.ID,
		Paid:      session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Metadata:  session.Metadata,
	}
	if session.CustomerDetails != nil {
		checkout.CustomerEmail = session.CustomerDetails.Email
	}
	if checkout.Metadata == nil {
		checkout.Metadata = map[string]string{}
	}
	event.Checkout = checkout

	return event, nil
}
