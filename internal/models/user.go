package models

// User is the denormalized projection stored at users/{uid}. The identity
// provider owns the account; this service only reads the cached email and
// merge-writes the bank-link access token.
type User struct {
	Email            string `firestore:"email" json:"email"`
	PlaidAccessToken string `firestore:"plaidAccessToken" json:"-"`
}
