package models

import "time"

// Transaction is one completed payment recorded under users/{uid}/transactions.
// Records are append-only; the webhook handler never updates or deletes them.
type Transaction struct {
	ID            string    `firestore:"-" json:"id"`
	Amount        int64     `firestore:"amount" json:"amount"` // minor currency units
	Currency      string    `firestore:"currency" json:"currency"`
	PaymentIntent string    `firestore:"payment_intent" json:"payment_intent"`
	Status        string    `firestore:"status" json:"status"`
	Timestamp     time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
}
