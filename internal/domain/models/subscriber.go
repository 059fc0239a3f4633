package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is pending until IsActive is set by the confirmation link.
type Subscriber struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Email             string    `db:"email" json:"email"`
	IsActive          bool      `db:"is_active" json:"is_active"`
	ConfirmationToken uuid.UUID `db:"confirmation_token" json:"-"`
	UnsubscribeToken  uuid.UUID `db:"unsubscribe_token" json:"-"`
	SubscribedAt      time.Time `db:"subscribed_at" json:"subscribed_at"`
}
