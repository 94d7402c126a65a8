package ports

import (
	"context"

	"github.com/futureblog/newsletter/internal/core/domain/subscriber"
	"github.com/google/uuid"
)

// SubscriptionTx is an explicit transaction handle for the registration
// write path. The subscriber insert and the token insert must happen on the
// same handle so they commit or roll back together. Callers must finish
// with Commit or Rollback; Rollback after a successful Commit is a no-op,
// which makes `defer tx.Rollback()` the standard usage.
type SubscriptionTx interface {
	InsertSubscriber(ctx context.Context, sub *subscriber.Subscriber) error
	StoreToken(ctx context.Context, subscriberID uuid.UUID, token string) error
	Commit() error
	Rollback() error
}

// SubscriptionRepository owns the persistence of subscribers and their
// confirmation tokens.
type SubscriptionRepository interface {
	// Begin opens the transaction used by the registration path.
	Begin(ctx context.Context) (SubscriptionTx, error)

	// GetSubscriberIDByToken resolves a confirmation token. Returns
	// subscriber.ErrTokenNotFound when the token does not exist;
	// any other failure is a storage error.
	GetSubscriberIDByToken(ctx context.Context, token string) (uuid.UUID, error)

	// ConfirmSubscriber marks a subscriber confirmed. Single atomic
	// statement, idempotent: confirming an already-confirmed subscriber
	// succeeds and leaves state unchanged.
	ConfirmSubscriber(ctx context.Context, subscriberID uuid.UUID) error
}

// SubscriptionService orchestrates the double opt-in workflows.
type SubscriptionService interface {
	// RegisterSubscriber validates the request, persists a pending
	// subscriber together with its confirmation token in one transaction,
	// and dispatches the confirmation email after commit.
	RegisterSubscriber(ctx context.Context, req *subscriber.SubscribeRequest) (*subscriber.Subscriber, error)

	// ConfirmSubscription resolves a token and promotes the subscriber to
	// confirmed. Repeated calls with the same valid token succeed.
	ConfirmSubscription(ctx context.Context, token string) error
}
