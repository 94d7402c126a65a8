package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/futureblog/newsletter/internal/core/domain/subscriber"
	"github.com/futureblog/newsletter/internal/core/ports"
	"github.com/futureblog/newsletter/internal/infrastructure/db"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// SubscriptionRepository implements the subscription repository interface
// on Postgres via sqlx.
type SubscriptionRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(database *db.Database, logger *logrus.Logger) ports.SubscriptionRepository {
	return &SubscriptionRepository{
		db:     database,
		logger: logger,
	}
}

// subscriptionTx wraps a sqlx transaction as the guarded handle used by the
// registration path.
type subscriptionTx struct {
	tx     *sqlx.Tx
	logger *logrus.Logger
}

// Begin opens the transaction covering the subscriber and token inserts.
func (r *SubscriptionRepository) Begin(ctx context.Context) (ports.SubscriptionTx, error) {
	tx, err := r.db.DB.BeginTxx(ctx, nil)
	if err != nil {
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to begin transaction")
		}
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &subscriptionTx{tx: tx, logger: r.logger}, nil
}

// InsertSubscriber inserts a pending subscriber row inside the transaction.
func (t *subscriptionTx) InsertSubscriber(ctx context.Context, sub *subscriber.Subscriber) error {
	query := `
		INSERT INTO subscriptions (id, email, name, subscribed_at, status)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := t.tx.ExecContext(ctx, query,
		sub.ID, sub.Email, sub.Name, sub.SubscribedAt, sub.Status.String())
	if err != nil {
		if t.logger != nil {
			t.logger.WithFields(logrus.Fields{"subscriber_id": sub.ID, "email": sub.Email}).WithError(err).Error("db: failed to insert subscriber")
		}
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}

	return nil
}

// StoreToken inserts the confirmation token row inside the same transaction
// as the subscriber insert.
func (t *subscriptionTx) StoreToken(ctx context.Context, subscriberID uuid.UUID, token string) error {
	row := subscriber.SubscriptionToken{Token: token, SubscriberID: subscriberID}
	query := `
		INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		VALUES (:subscription_token, :subscriber_id)`

	_, err := t.tx.NamedExecContext(ctx, query, row)
	if err != nil {
		if t.logger != nil {
			t.logger.WithField("subscriber_id", subscriberID).WithError(err).Error("db: failed to store subscription token")
		}
		return fmt.Errorf("failed to store subscription token: %w", err)
	}

	return nil
}

func (t *subscriptionTx) Commit() error {
	return t.tx.Commit()
}

// Rollback discards the transaction. After a successful Commit it returns
// sql.ErrTxDone, which is swallowed so deferred rollbacks are harmless.
func (t *subscriptionTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

// GetSubscriberIDByToken resolves a confirmation token to a subscriber ID.
func (r *SubscriptionRepository) GetSubscriberIDByToken(ctx context.Context, token string) (uuid.UUID, error) {
	var row subscriber.SubscriptionToken
	query := `SELECT subscription_token, subscriber_id FROM subscription_tokens WHERE subscription_token = $1`

	err := r.db.DB.GetContext(ctx, &row, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if r.logger != nil {
				r.logger.Debug("db: subscription token not found")
			}
			return uuid.Nil, subscriber.ErrTokenNotFound
		}
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to look up subscription token")
		}
		return uuid.Nil, fmt.Errorf("failed to look up subscription token: %w", err)
	}

	return row.SubscriberID, nil
}

// ConfirmSubscriber marks a subscriber confirmed. The statement is
// idempotent: re-running it against an already-confirmed subscriber leaves
// the row unchanged and succeeds.
func (r *SubscriptionRepository) ConfirmSubscriber(ctx context.Context, subscriberID uuid.UUID) error {
	query := `UPDATE subscriptions SET status = $2 WHERE id = $1`

	_, err := r.db.DB.ExecContext(ctx, query, subscriberID, subscriber.StatusConfirmed.String())
	if err != nil {
		if r.logger != nil {
			r.logger.WithField("subscriber_id", subscriberID).WithError(err).Error("db: failed to confirm subscriber")
		}
		return fmt.Errorf("failed to confirm subscriber: %w", err)
	}

	return nil
}
