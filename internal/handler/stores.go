package handler

import (
	"context"

	"zarcaro/internal/models"
)

// Store interfaces consumed by the handlers. The Firestore-backed
// implementations live in internal/repository; tests substitute fakes.

type UserStore interface {
	GetEmail(ctx context.Context, uid string) (string, error)
	SetPlaidAccessToken(ctx context.Context, uid, accessToken string) error
}

type TransactionStore interface {
	Create(ctx context.Context, uid string, t *models.Transaction) error
	ListByUser(ctx context.Context, uid string) ([]models.Transaction, error)
}

type ContactStore interface {
	Create(ctx context.Context, m *models.ContactMessage) error
}
