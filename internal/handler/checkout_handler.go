package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"zarcaro/internal/middleware"
	"zarcaro/pkg/stripepay"
)

const (
	defaultDescription = "Legal Services Payment"
	upstreamTimeout    = 15 * time.Second
	storeTimeout       = 10 * time.Second
)

type CheckoutHandler struct {
	users    UserStore
	payments stripepay.Provider
}

func NewCheckoutHandler(users UserStore, payments stripepay.Provider) *CheckoutHandler {
	return &CheckoutHandler{users: users, payments: payments}
}

// Create validates the request and asks Stripe for a hosted checkout session
// tagged with the caller's user ID, returning the hosted page URL.
func (h *CheckoutHandler) Create(c *gin.Context) {
	uid := middleware.GetUserID(c)
	var req struct {
		Amount      int64  `json:"amount" binding:"required,min=1"`
		Description string `json:"description"`
		SuccessURL  string `json:"success_url" binding:"required"`
		CancelURL   string `json:"cancel_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount, success_url and cancel_url are required"})
		return
	}
	if req.Description == "" {
		req.Description = defaultDescription
	}

	// Email prefill is a convenience; a missing user doc (or a store hiccup)
	// must not block checkout.
	emailCtx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	email, err := h.users.GetEmail(emailCtx, uid)
	cancel()
	if err != nil {
		log.Printf("[Checkout] email lookup failed for uid=%s: %v", uid, err)
		email = ""
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()
	url, err := h.payments.CreateCheckoutSession(ctx, stripepay.SessionRequest{
		Amount:            req.Amount,
		Description:       req.Description,
		SuccessURL:        req.SuccessURL,
		CancelURL:         req.CancelURL,
		CustomerEmail:     email,
		ClientReferenceID: uid,
	})
	if err != nil {
		log.Printf("[Checkout] session create failed for uid=%s: %v", uid, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": stripepay.ErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
