package stripecheckout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Client создает checkout-сессии для оплаты аванса
type Client struct {
	sessions checkoutsession.Client
	currency string
	siteURL  string
	timeout  time.Duration
	log      Logger
}

// NewClient создает новый экземпляр клиента Stripe.
// backend == nil означает стандартный API Stripe.
func NewClient(secretKey, currency, siteURL string, timeout time.Duration, backend stripe.Backend, log Logger) *Client {
	if backend == nil {
		backend = stripe.GetBackend(stripe.APIBackend)
	}

	return &Client{
		sessions: checkoutsession.Client{B: backend, Key: secretKey},
		currency: currency,
		siteURL:  strings.TrimSuffix(siteURL, "/"),
		timeout:  timeout,
		log:      log,
	}
}

// CreateDepositSession создает сессию оплаты аванса и возвращает ссылку на страницу оплаты
func (c *Client) CreateDepositSession(ctx context.Context, deposit *DepositSession) (*Session, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card", "bancontact"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(c.currency),
					UnitAmount: stripe.Int64(deposit.DepositCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Acompte %d%% - %s", domain.DepositPercent, deposit.Pack)),
						Description: stripe.String(deposit.VehicleModel + " | " + slotLabel(deposit)),
					},
				},
			},
		},
		SuccessURL: stripe.String(c.siteURL + "/reservation/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(c.siteURL + "/reservation/cancel"),
		Metadata:   deposit.metadata(),
		CustomText: &stripe.CheckoutSessionCustomTextParams{
			Submit: &stripe.CheckoutSessionCustomTextSubmitParams{
				Message: stripe.String(fmt.Sprintf("Acompte de %s EUR. Le solde sera réglé sur place.", domain.CentsToEuros(deposit.DepositCents))),
			},
		},
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"bookingPack":     deposit.Pack,
				"bookingTimeSlot": deposit.TimeSlot,
			},
		},
	}
	params.Context = ctx

	sess, err := c.sessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return nil, fmt.Errorf("%w: status %d, code %s: %s", ErrUnavailable, stripeErr.HTTPStatusCode, stripeErr.Code, stripeErr.Msg)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if sess.URL == "" {
		return nil, fmt.Errorf("%w: session %s has no url", ErrInvalidResponse, sess.ID)
	}

	c.log.Info("Stripe: created checkout session id=%s, pack=%s, deposit=%d", sess.ID, deposit.Pack, deposit.DepositCents)
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}

func (d *DepositSession) metadata() map[string]string {
	return map[string]string{
		MetaPack:            d.Pack,
		MetaVehicleModel:    d.VehicleModel,
		MetaPhone:           d.Phone,
		MetaAddress:         d.Address,
		MetaHouseNumber:     d.HouseNumber,
		MetaDate:            d.Date,
		MetaTimeSlot:        d.TimeSlot,
		MetaTimeSlotLabel:   d.TimeSlotLabel,
		MetaDurationMinutes: fmt.Sprintf("%d", d.DurationMinutes),
		MetaNotes:           truncateRunes(d.Notes, domain.MaxNotesLength),
	}
}

func slotLabel(d *DepositSession) string {
	if d.TimeSlotLabel != "" {
		return d.TimeSlotLabel
	}
	return d.TimeSlot
}

// truncateRunes обрезает строку до limit символов (metadata Stripe ограничена 500 символами на значение)
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
