package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/futureblog/newsletter/internal/core/domain/subscriber"
	"github.com/futureblog/newsletter/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// SubscriptionService implements the double opt-in workflows.
type SubscriptionService struct {
	repo         ports.SubscriptionRepository
	emailService ports.EmailService
	tokenGen     ports.TokenGenerator
	logger       *logrus.Logger
}

func NewSubscriptionService(repo ports.SubscriptionRepository, emailService ports.EmailService, tokenGen ports.TokenGenerator, logger *logrus.Logger) ports.SubscriptionService {
	return &SubscriptionService{
		repo:         repo,
		emailService: emailService,
		tokenGen:     tokenGen,
		logger:       logger,
	}
}

// RegisterSubscriber validates the request, persists a pending subscriber
// and its confirmation token in a single transaction, and dispatches the
// confirmation email after commit. A dispatch failure leaves the subscriber
// durably pending; there is no retry or resend path.
func (s *SubscriptionService) RegisterSubscriber(ctx context.Context, req *subscriber.SubscribeRequest) (*subscriber.Subscriber, error) {
	// Validation happens before any I/O.
	name, err := subscriber.ParseName(req.Name)
	if err != nil {
		return nil, err
	}
	email, err := subscriber.ParseEmail(req.Email)
	if err != nil {
		return nil, err
	}

	sub := subscriber.NewSubscriber(name, email)

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", subscriber.ErrPersistence, err)
	}
	// Rollback is a no-op once the transaction has committed, so every
	// early return below leaves no partial state behind.
	defer func() { _ = tx.Rollback() }()

	if err := tx.InsertSubscriber(ctx, sub); err != nil {
		return nil, fmt.Errorf("%w: failed to insert subscriber: %v", subscriber.ErrPersistence, err)
	}

	token, err := s.tokenGen.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate confirmation token: %v", subscriber.ErrPersistence, err)
	}

	if err := tx.StoreToken(ctx, sub.ID, token); err != nil {
		return nil, fmt.Errorf("%w: failed to store confirmation token: %v", subscriber.ErrPersistence, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit transaction: %v", subscriber.ErrPersistence, err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"subscriber_id": sub.ID,
			"email":         sub.Email,
		}).Info("pending subscriber persisted")
	}

	// The email is deliberately outside the transaction: the subscriber is
	// already durable. A failure here is reported as a server error while
	// the row stays pending_confirmation.
	if err := s.emailService.SendConfirmationEmail(ctx, sub.Email, sub.Name, token); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{
				"subscriber_id": sub.ID,
				"email":         sub.Email,
			}).WithError(err).Error("failed to send confirmation email")
		}
		return nil, fmt.Errorf("%w: %v", subscriber.ErrDispatch, err)
	}

	return sub, nil
}

// ConfirmSubscription resolves a confirmation token and marks the
// subscriber confirmed. The update is idempotent, so repeated calls with
// the same valid token succeed and leave the subscriber confirmed.
func (s *SubscriptionService) ConfirmSubscription(ctx context.Context, token string) error {
	subscriberID, err := s.repo.GetSubscriberIDByToken(ctx, token)
	if err != nil {
		if errors.Is(err, subscriber.ErrTokenNotFound) {
			if s.logger != nil {
				s.logger.Debug("confirmation attempted with unknown token")
			}
			return err
		}
		return fmt.Errorf("%w: failed to look up token: %v", subscriber.ErrPersistence, err)
	}

	if err := s.repo.ConfirmSubscriber(ctx, subscriberID); err != nil {
		return fmt.Errorf("%w: failed to confirm subscriber: %v", subscriber.ErrPersistence, err)
	}

	if s.logger != nil {
		s.logger.WithField("subscriber_id", subscriberID).Info("subscriber confirmed")
	}

	return nil
}
