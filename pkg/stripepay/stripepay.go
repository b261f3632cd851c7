package stripepay

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// ErrNoWebhookSecret means STRIPE_WEBHOOK_SECRET was never configured. Unsigned
// payloads are refused rather than parsed on trust.
var ErrNoWebhookSecret = errors.New("stripe webhook secret not configured")

// SessionRequest describes a hosted checkout session to create.
type SessionRequest struct {
	Amount            int64 // minor currency units
	Description       string
	SuccessURL        string
	CancelURL         string
	CustomerEmail     string // optional prefill
	ClientReferenceID string // user ID echoed back in the completion webhook
}

// Provider creates checkout sessions and authenticates webhook payloads.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, req SessionRequest) (string, error)
	ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

// Client is the Stripe-backed Provider.
type Client struct {
	api           *client.API
	webhookSecret string
}

var _ Provider = (*Client)(nil)

func NewClient(secretKey, webhookSecret string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api, webhookSecret: webhookSecret}
}

// CreateCheckoutSession creates a payment-mode session for card and US bank
// debit and returns the hosted page URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, req SessionRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
			"us_bank_account",
		}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(req.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.ClientReferenceID),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	s, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}

// ConstructEvent verifies the Stripe-Signature header against the webhook
// secret and decodes the event.
func (c *Client) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	if c.webhookSecret == "" {
		return stripe.Event{}, ErrNoWebhookSecret
	}
	return webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
}

// ErrorMessage extracts Stripe's own message from an API error, falling back
// to the plain error text.
func ErrorMessage(err error) string {
	var sErr *stripe.Error
	if errors.As(err, &sErr) && sErr.Msg != "" {
		return sErr.Msg
	}
	return err.Error()
}
