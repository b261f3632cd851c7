package repository

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"zarcaro/internal/models"
)

const transactionsCollection = "transactions"

// ErrDuplicateTransaction is returned when a transaction with the same
// processor reference already exists for the user. Webhook deliveries are
// at-least-once, so callers treat this as an acknowledged no-op.
var ErrDuplicateTransaction = errors.New("transaction already recorded")

type TransactionRepository struct {
	client *firestore.Client
}

func NewTransactionRepository(client *firestore.Client) *TransactionRepository {
	return &TransactionRepository{client: client}
}

// Create appends a transaction under the user. When the processor reference is
// known it doubles as the document ID so concurrent duplicate deliveries race
// on a conditional create instead of both inserting.
func (r *TransactionRepository) Create(ctx context.Context, uid string, t *models.Transaction) error {
	col := r.client.Collection(usersCollection).Doc(uid).Collection(transactionsCollection)
	if t.PaymentIntent == "" {
		// No reference to dedupe on; fall back to an auto ID.
		_, _, err := col.Add(ctx, t)
		return err
	}
	_, err := col.Doc(t.PaymentIntent).Create(ctx, t)
	if status.Code(err) == codes.AlreadyExists {
		return ErrDuplicateTransaction
	}
	return err
}

// ListByUser returns the user's transactions newest first.
func (r *TransactionRepository) ListByUser(ctx context.Context, uid string) ([]models.Transaction, error) {
	iter := r.client.Collection(usersCollection).Doc(uid).Collection(transactionsCollection).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var out []models.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var t models.Transaction
		if err := doc.DataTo(&t); err != nil {
			return nil, err
		}
		t.ID = doc.Ref.ID
		out = append(out, t)
	}
	return out, nil
}
