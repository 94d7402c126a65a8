package httpserver

import (
	"errors"
	"net/http"

	"github.com/futureblog/newsletter/internal/core/domain/subscriber"
)

// httpStatusFor maps the closed error taxonomy of the subscription
// workflows to HTTP status codes. Pure function, kept apart from the
// workflow logic so it can be unit-tested without I/O.
func httpStatusFor(err error) int {
	switch {
	case errors.Is(err, subscriber.ErrInvalidName), errors.Is(err, subscriber.ErrInvalidEmail):
		return http.StatusBadRequest
	case errors.Is(err, subscriber.ErrTokenNotFound):
		return http.StatusUnauthorized
	default:
		// Persistence and dispatch failures, and anything unclassified.
		return http.StatusInternalServerError
	}
}
