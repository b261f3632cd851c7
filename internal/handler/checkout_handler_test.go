package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCheckoutRouter(users *fakeUserStore, payments *fakeStripeProvider) *gin.Engine {
	r := gin.New()
	h := NewCheckoutHandler(users, payments)
	r.POST("/create-checkout-session", authAs("u1"), h.Create)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCheckout_RejectsBadAmounts(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero amount", `{"amount":0,"success_url":"https://x/ok","cancel_url":"https://x/cancel"}`},
		{"negative amount", `{"amount":-500,"success_url":"https://x/ok","cancel_url":"https://x/cancel"}`},
		{"non-integer amount", `{"amount":50.5,"success_url":"https://x/ok","cancel_url":"https://x/cancel"}`},
		{"missing amount", `{"success_url":"https://x/ok","cancel_url":"https://x/cancel"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := &fakeStripeProvider{url: "https://checkout.stripe.com/pay/cs_test"}
			r := newCheckoutRouter(&fakeUserStore{}, payments)

			w := postJSON(r, "/create-checkout-session", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, payments.requests, "processor must not be called")
		})
	}
}

func TestCreateCheckout_RejectsMissingRedirectURLs(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing success_url", `{"amount":5000,"cancel_url":"https://x/cancel"}`},
		{"missing cancel_url", `{"amount":5000,"success_url":"https://x/ok"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserStore{}
			payments := &fakeStripeProvider{}
			r := newCheckoutRouter(users, payments)

			w := postJSON(r, "/create-checkout-session", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, payments.requests)
			assert.Zero(t, users.getCalls, "no external call before validation")
		})
	}
}

func TestCreateCheckout_Success(t *testing.T) {
	users := &fakeUserStore{email: "client@example.com"}
	payments := &fakeStripeProvider{url: "https://checkout.stripe.com/pay/cs_test"}
	r := newCheckoutRouter(users, payments)

	w := postJSON(r, "/create-checkout-session",
		`{"amount":5000,"success_url":"https://x/ok","cancel_url":"https://x/cancel"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test", resp["url"])

	if assert.Len(t, payments.requests, 1) {
		got := payments.requests[0]
		assert.Equal(t, int64(5000), got.Amount)
		assert.Equal(t, "u1", got.ClientReferenceID)
		assert.Equal(t, "client@example.com", got.CustomerEmail)
		assert.Equal(t, "https://x/ok", got.SuccessURL)
		assert.Equal(t, "https://x/cancel", got.CancelURL)
		assert.Equal(t, "Legal Services Payment", got.Description)
	}
}

func TestCreateCheckout_CustomDescription(t *testing.T) {
	payments := &fakeStripeProvider{url: "https://checkout.stripe.com/pay/cs_test"}
	r := newCheckoutRouter(&fakeUserStore{}, payments)

	w := postJSON(r, "/create-checkout-session",
		`{"amount":2500,"description":"Consultation","success_url":"https://x/ok","cancel_url":"https://x/cancel"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Consultation", payments.requests[0].Description)
}

func TestCreateCheckout_EmailLookupFailureIsNotFatal(t *testing.T) {
	users := &fakeUserStore{emailErr: errors.New("store unavailable")}
	payments := &fakeStripeProvider{url: "https://checkout.stripe.com/pay/cs_test"}
	r := newCheckoutRouter(users, payments)

	w := postJSON(r, "/create-checkout-session",
		`{"amount":5000,"success_url":"https://x/ok","cancel_url":"https://x/cancel"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, payments.requests[0].CustomerEmail)
}

func TestCreateCheckout_UpstreamError(t *testing.T) {
	payments := &fakeStripeProvider{err: errors.New("rate limited")}
	r := newCheckoutRouter(&fakeUserStore{}, payments)

	w := postJSON(r, "/create-checkout-session",
		`{"amount":5000,"success_url":"https://x/ok","cancel_url":"https://x/cancel"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rate limited", resp["error"])
}
