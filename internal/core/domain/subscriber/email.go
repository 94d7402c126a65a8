package subscriber

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var emailValidator = validator.New()

// ParseEmail validates a raw email address against a standard email
// grammar. Only syntax is checked; deliverability is not. Pure function.
func ParseEmail(raw string) (string, error) {
	if err := emailValidator.Var(raw, "required,email"); err != nil {
		return "", fmt.Errorf("%w: %q is not a valid email address", ErrInvalidEmail, raw)
	}
	return raw, nil
}
