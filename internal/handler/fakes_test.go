package handler

import (
	"context"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"

	"zarcaro/internal/models"
	"zarcaro/internal/repository"
	"zarcaro/pkg/plaidlink"
	"zarcaro/pkg/stripepay"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authAs stands in for the auth middleware in handler tests.
func authAs(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", uid)
	}
}

type fakeUserStore struct {
	email    string
	emailErr error
	setErr   error
	tokens   map[string]string
	getCalls int
	setCalls int
}

func (f *fakeUserStore) GetEmail(_ context.Context, _ string) (string, error) {
	f.getCalls++
	return f.email, f.emailErr
}

func (f *fakeUserStore) SetPlaidAccessToken(_ context.Context, uid, accessToken string) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	if f.tokens == nil {
		f.tokens = make(map[string]string)
	}
	f.tokens[uid] = accessToken
	return nil
}

type fakeTransactionStore struct {
	byUser    map[string][]models.Transaction
	createErr error
	listErr   error
}

func (f *fakeTransactionStore) Create(_ context.Context, uid string, t *models.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.byUser == nil {
		f.byUser = make(map[string][]models.Transaction)
	}
	if t.PaymentIntent != "" {
		for _, existing := range f.byUser[uid] {
			if existing.PaymentIntent == t.PaymentIntent {
				return repository.ErrDuplicateTransaction
			}
		}
	}
	f.byUser[uid] = append(f.byUser[uid], *t)
	return nil
}

func (f *fakeTransactionStore) ListByUser(_ context.Context, uid string) ([]models.Transaction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := append([]models.Transaction(nil), f.byUser[uid]...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (f *fakeTransactionStore) count(uid string) int {
	return len(f.byUser[uid])
}

type fakeStripeProvider struct {
	url      string
	err      error
	requests []stripepay.SessionRequest

	event    stripe.Event
	eventErr error
}

func (f *fakeStripeProvider) CreateCheckoutSession(_ context.Context, req stripepay.SessionRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func (f *fakeStripeProvider) ConstructEvent(_ []byte, _ string) (stripe.Event, error) {
	if f.eventErr != nil {
		return stripe.Event{}, f.eventErr
	}
	return f.event, nil
}

type fakePlaidProvider struct {
	linkToken   *plaidlink.LinkToken
	createErr   error
	accessToken string
	exchangeErr error
	exchanged   []string
}

func (f *fakePlaidProvider) CreateLinkToken(_ context.Context, _ string) (*plaidlink.LinkToken, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.linkToken, nil
}

func (f *fakePlaidProvider) ExchangePublicToken(_ context.Context, publicToken string) (string, error) {
	f.exchanged = append(f.exchanged, publicToken)
	if f.exchangeErr != nil {
		return "", f.exchangeErr
	}
	return f.accessToken, nil
}

type fakeNotifier struct {
	err   error
	calls []struct{ name, email, message string }
}

func (f *fakeNotifier) NotifyContact(name, email, message string) error {
	f.calls = append(f.calls, struct{ name, email, message string }{name, email, message})
	return f.err
}

type fakeContactStore struct {
	err  error
	msgs []models.ContactMessage
}

func (f *fakeContactStore) Create(_ context.Context, m *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, *m)
	return nil
}
