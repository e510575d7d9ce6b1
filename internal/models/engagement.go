// internal/models/engagement.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type NewsletterSubscription struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

type ContactMessage struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// CheckoutSession is what the cart page receives back from checkout
// initiation. Demo sessions carry a synthetic id and Demo=true.
type CheckoutSession struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Demo bool   `json:"demo"`
}
