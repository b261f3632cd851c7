package models

import "time"

// ContactMessage is a contact-form submission stored in contact_messages.
// Written once, never read back by this service.
type ContactMessage struct {
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Message   string    `firestore:"message" json:"message"`
	Timestamp time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
}
