package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/futureblog/newsletter/internal/core/domain/subscriber"
)

func TestHTTPStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid name", subscriber.ErrInvalidName, http.StatusBadRequest},
		{"invalid email", subscriber.ErrInvalidEmail, http.StatusBadRequest},
		{"wrapped validation error", fmt.Errorf("%w: empty", subscriber.ErrInvalidName), http.StatusBadRequest},
		{"token not found", subscriber.ErrTokenNotFound, http.StatusUnauthorized},
		{"persistence failure", subscriber.ErrPersistence, http.StatusInternalServerError},
		{"dispatch failure", subscriber.ErrDispatch, http.StatusInternalServerError},
		{"unclassified error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := httpStatusFor(tc.err); got != tc.want {
				t.Fatalf("httpStatusFor(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
