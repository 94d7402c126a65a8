package subscriber

import "errors"

// Closed error taxonomy of the subscription workflows. The HTTP layer maps
// these to status codes; no error detail leaves the process in a response
// body.
var (
	// ErrInvalidName is returned when a subscriber name fails validation.
	ErrInvalidName = errors.New("invalid subscriber name")

	// ErrInvalidEmail is returned when a subscriber email fails validation.
	ErrInvalidEmail = errors.New("invalid subscriber email")

	// ErrTokenNotFound is returned when a confirmation token does not
	// resolve to a subscriber. Reported as an authorization failure, not a
	// not-found, so probing clients learn nothing about token existence.
	ErrTokenNotFound = errors.New("subscription token not found")

	// ErrPersistence is returned when the backing store fails. For the
	// registration path the transaction guarantees no partial state
	// survives.
	ErrPersistence = errors.New("persistence failure")

	// ErrDispatch is returned when the confirmation email cannot be sent.
	// The subscriber row is already committed at that point and stays
	// pending.
	ErrDispatch = errors.New("email dispatch failure")
)
