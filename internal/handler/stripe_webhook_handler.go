package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"

	"zarcaro/internal/models"
	"zarcaro/internal/repository"
	"zarcaro/pkg/stripepay"
)

// Stripe docs cap event payloads well below this.
const maxWebhookBody = int64(65536)

// Events with no client_reference_id land here instead of being rejected, so
// the processor stops retrying something we can never attribute.
const unknownUserBucket = "unknown"

type StripeWebhookHandler struct {
	payments     stripepay.Provider
	transactions TransactionStore
}

func NewStripeWebhookHandler(payments stripepay.Provider, transactions TransactionStore) *StripeWebhookHandler {
	return &StripeWebhookHandler{payments: payments, transactions: transactions}
}

// Handle processes Stripe webhook deliveries. Delivery is at-least-once and
// unordered; only checkout.session.completed writes anything, keyed by the
// payment intent so a duplicate delivery cannot produce a second record.
// Responses carry status codes only — Stripe ignores bodies.
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[StripeWebhook] read body failed: %v", err)
		c.Status(http.StatusBadRequest)
		return
	}

	event, err := h.payments.ConstructEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		log.Printf("[StripeWebhook] event verification failed: %v", err)
		c.Status(http.StatusBadRequest)
		return
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		c.Status(http.StatusOK)
		return
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		log.Printf("[StripeWebhook] bad session payload in event %s: %v", event.ID, err)
		c.Status(http.StatusBadRequest)
		return
	}

	uid := sess.ClientReferenceID
	if uid == "" {
		log.Printf("[StripeWebhook] event %s has no client_reference_id, recording under %q", event.ID, unknownUserBucket)
		uid = unknownUserBucket
	}
	t := &models.Transaction{
		Amount:   sess.AmountTotal,
		Currency: string(sess.Currency),
		Status:   string(sess.PaymentStatus),
	}
	if sess.PaymentIntent != nil {
		t.PaymentIntent = sess.PaymentIntent.ID
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()
	err = h.transactions.Create(ctx, uid, t)
	if errors.Is(err, repository.ErrDuplicateTransaction) {
		log.Printf("[StripeWebhook] duplicate delivery for payment_intent=%s uid=%s", t.PaymentIntent, uid)
		c.Status(http.StatusOK)
		return
	}
	if err != nil {
		// 500 so Stripe retries the delivery.
		log.Printf("[StripeWebhook] record failed for uid=%s: %v", uid, err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
