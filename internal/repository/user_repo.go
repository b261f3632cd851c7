package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"zarcaro/internal/models"
)

const usersCollection = "users"

type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

// GetEmail returns the cached email for the user, or "" when the user document
// or the field does not exist. Only hard store failures are errors.
func (r *UserRepository) GetEmail(ctx context.Context, uid string) (string, error) {
	doc, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var u models.User
	if err := doc.DataTo(&u); err != nil {
		return "", err
	}
	return u.Email, nil
}

// SetPlaidAccessToken merge-writes the bank-link access token onto the user
// document without clobbering other fields.
func (r *UserRepository) SetPlaidAccessToken(ctx context.Context, uid, accessToken string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Set(ctx, map[string]interface{}{
		"plaidAccessToken": accessToken,
	}, firestore.MergeAll)
	return err
}
