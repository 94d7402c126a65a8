package ports

import (
	"context"
)

// EmailService defines the interface for outgoing email
type EmailService interface {
	// SendConfirmationEmail sends the double opt-in confirmation message.
	// The html and plain-text bodies carry an identical confirmation link
	// embedding the raw token.
	SendConfirmationEmail(ctx context.Context, email, name, token string) error
}
