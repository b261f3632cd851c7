package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"zarcaro/internal/models"
)

const contactMessagesCollection = "contact_messages"

type ContactRepository struct {
	client *firestore.Client
}

func NewContactRepository(client *firestore.Client) *ContactRepository {
	return &ContactRepository{client: client}
}

func (r *ContactRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	_, _, err := r.client.Collection(contactMessagesCollection).Add(ctx, m)
	return err
}
