package mocks

import (
	"context"
	"time"

	"github.com/futureblog/newsletter/internal/core/domain/subscriber"
	"github.com/futureblog/newsletter/internal/core/ports"
	"github.com/google/uuid"
)

// SubscriptionTxMock is a lightweight mock for the transaction handle.
type SubscriptionTxMock struct {
	InsertSubscriberFn func(ctx context.Context, sub *subscriber.Subscriber) error
	StoreTokenFn       func(ctx context.Context, subscriberID uuid.UUID, token string) error
	CommitFn           func() error
	RollbackFn         func() error

	Committed  bool
	RolledBack bool
}

func (m *SubscriptionTxMock) InsertSubscriber(ctx context.Context, sub *subscriber.Subscriber) error {
	if m.InsertSubscriberFn != nil {
		return m.InsertSubscriberFn(ctx, sub)
	}
	return nil
}

func (m *SubscriptionTxMock) StoreToken(ctx context.Context, subscriberID uuid.UUID, token string) error {
	if m.StoreTokenFn != nil {
		return m.StoreTokenFn(ctx, subscriberID, token)
	}
	return nil
}

func (m *SubscriptionTxMock) Commit() error {
	m.Committed = true
	if m.CommitFn != nil {
		return m.CommitFn()
	}
	return nil
}

func (m *SubscriptionTxMock) Rollback() error {
	if !m.Committed {
		m.RolledBack = true
	}
	if m.RollbackFn != nil {
		return m.RollbackFn()
	}
	return nil
}

// SubscriptionRepositoryMock is a lightweight mock for SubscriptionRepository.
type SubscriptionRepositoryMock struct {
	BeginFn                  func(ctx context.Context) (ports.SubscriptionTx, error)
	GetSubscriberIDByTokenFn func(ctx context.Context, token string) (uuid.UUID, error)
	ConfirmSubscriberFn      func(ctx context.Context, subscriberID uuid.UUID) error

	BeginCalls int
}

func (m *SubscriptionRepositoryMock) Begin(ctx context.Context) (ports.SubscriptionTx, error) {
	m.BeginCalls++
	if m.BeginFn != nil {
		return m.BeginFn(ctx)
	}
	return &SubscriptionTxMock{}, nil
}

func (m *SubscriptionRepositoryMock) GetSubscriberIDByToken(ctx context.Context, token string) (uuid.UUID, error) {
	if m.GetSubscriberIDByTokenFn != nil {
		return m.GetSubscriberIDByTokenFn(ctx, token)
	}
	return uuid.Nil, subscriber.ErrTokenNotFound
}

func (m *SubscriptionRepositoryMock) ConfirmSubscriber(ctx context.Context, subscriberID uuid.UUID) error {
	if m.ConfirmSubscriberFn != nil {
		return m.ConfirmSubscriberFn(ctx, subscriberID)
	}
	return nil
}

// EmailServiceMock records dispatched confirmation emails.
type EmailServiceMock struct {
	SendConfirmationEmailFn func(ctx context.Context, email, name, token string) error

	SentTo     []string
	SentTokens []string
}

func (m *EmailServiceMock) SendConfirmationEmail(ctx context.Context, email, name, token string) error {
	m.SentTo = append(m.SentTo, email)
	m.SentTokens = append(m.SentTokens, token)
	if m.SendConfirmationEmailFn != nil {
		return m.SendConfirmationEmailFn(ctx, email, name, token)
	}
	return nil
}

// TokenGeneratorMock returns a fixed token unless overridden.
type TokenGeneratorMock struct {
	GenerateFn func() (string, error)
}

func (m *TokenGeneratorMock) Generate() (string, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn()
	}
	return "aaaaabbbbbcccccdddddeeeee", nil
}

// SubscriptionServiceMock is a lightweight mock for SubscriptionService.
type SubscriptionServiceMock struct {
	RegisterSubscriberFn  func(ctx context.Context, req *subscriber.SubscribeRequest) (*subscriber.Subscriber, error)
	ConfirmSubscriptionFn func(ctx context.Context, token string) error
}

func (m *SubscriptionServiceMock) RegisterSubscriber(ctx context.Context, req *subscriber.SubscribeRequest) (*subscriber.Subscriber, error) {
	if m.RegisterSubscriberFn != nil {
		return m.RegisterSubscriberFn(ctx, req)
	}
	return &subscriber.Subscriber{
		ID:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		Status:       subscriber.StatusPendingConfirmation,
		SubscribedAt: time.Now().UTC(),
	}, nil
}

func (m *SubscriptionServiceMock) ConfirmSubscription(ctx context.Context, token string) error {
	if m.ConfirmSubscriptionFn != nil {
		return m.ConfirmSubscriptionFn(ctx, token)
	}
	return nil
}

// RateLimiterServiceMock allows everything by default.
type RateLimiterServiceMock struct {
	AllowFn func(ctx context.Context, clientKey string) (bool, int, int, time.Time, error)
}

func (m *RateLimiterServiceMock) Allow(ctx context.Context, clientKey string) (bool, int, int, time.Time, error) {
	if m.AllowFn != nil {
		return m.AllowFn(ctx, clientKey)
	}
	return true, 59, 60, time.Now().Add(time.Minute), nil
}
