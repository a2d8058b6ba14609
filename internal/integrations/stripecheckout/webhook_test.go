package stripecheckout

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func checkoutEventPayload(t *testing.T, eventType, paymentStatus string) []byte {
	t.Helper()

	payload, err := json.Marshal(map[string]interface{}{
		"id":          "evt_test_1",
		"object":      "event",
		"type":        eventType,
		"api_version": "2020-08-27",
		"created":     time.Now().Unix(),
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"id":             "cs_test_1",
				"object":         "checkout.session",
				"payment_status": paymentStatus,
				"metadata": map[string]string{
					MetaPack:            "Pack Confort",
					MetaTimeSlot:        "2026-10-20T12:00:00Z",
					MetaDurationMinutes: "150",
				},
				"customer_details": map[string]interface{}{"email": "client@example.com"},
			},
		},
	})
	require.NoError(t, err)
	return payload
}

func sign(payload []byte, secret string) string {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
		Scheme:    "v1",
	})
	return signed.Header
}

func TestVerify_CheckoutCompleted(t *testing.T) {
	payload := checkoutEventPayload(t, EventCheckoutCompleted, "paid")

	event, err := NewWebhookVerifier(testWebhookSecret).Verify(payload, sign(payload, testWebhookSecret))
	require.NoError(t, err)

	assert.Equal(t, "evt_test_1", event.ID)
	require.NotNil(t, event.Checkout)
	assert.Equal(t, "cs_test_1", event.Checkout.SessionID)
	assert.True(t, event.Checkout.Paid)
	assert.Equal(t, "150", event.Checkout.Metadata[MetaDurationMinutes])
	assert.Equal(t, "client@example.com", event.Checkout.CustomerEmail)
}

func TestVerify_Unpaid(t *testing.T) {
	payload := checkoutEventPayload(t, EventCheckoutCompleted, "unpaid")

	event, err := NewWebhookVerifier(testWebhookSecret).Verify(payload, sign(payload, testWebhookSecret))
	require.NoError(t, err)
	assert.False(t, event.Checkout.Paid)
}

func TestVerify_OtherEventType(t *testing.T) {
	payload := checkoutEventPayload(t, "checkout.session.expired", "unpaid")

	event, err := NewWebhookVerifier(testWebhookSecret).Verify(payload, sign(payload, testWebhookSecret))
	require.NoError(t, err)
	assert.Equal(t, "checkout.session.expired", event.Type)
	assert.Nil(t, event.Checkout)
}

func TestVerify_BadSignature(t *testing.T) {
	payload := checkoutEventPayload(t, EventCheckoutCompleted, "paid")

	_, err := NewWebhookVerifier(testWebhookSecret).Verify(payload, sign(payload, "whsec_other"))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_NotConfigured(t *testing.T) {
	payload := checkoutEventPayload(t, EventCheckoutCompleted, "paid")

	_, err := NewWebhookVerifier("  ").Verify(payload, sign(payload, testWebhookSecret))
	assert.ErrorIs(t, err, ErrNotConfigured)
}
