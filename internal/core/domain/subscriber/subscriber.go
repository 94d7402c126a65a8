package subscriber

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber represents a newsletter subscriber.
type Subscriber struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Status       Status    `json:"status" db:"status"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
}

// Status is the confirmation state of a subscriber. The transition is
// one-directional: pending_confirmation -> confirmed.
type Status string

const (
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingConfirmation, StatusConfirmed:
		return true
	default:
		return false
	}
}

// SubscriptionToken binds a single-use confirmation token to a subscriber.
// Tokens are generated at registration time and stored in the same
// transaction as the subscriber row.
type SubscriptionToken struct {
	Token        string    `json:"subscription_token" db:"subscription_token"`
	SubscriberID uuid.UUID `json:"subscriber_id" db:"subscriber_id"`
}

// SubscribeRequest carries the raw form fields of a registration request.
type SubscribeRequest struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required"`
}

// NewSubscriber builds a pending subscriber from already validated name and
// email values.
func NewSubscriber(name, email string) *Subscriber {
	return &Subscriber{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Status:       StatusPendingConfirmation,
		SubscribedAt: time.Now().UTC(),
	}
}
