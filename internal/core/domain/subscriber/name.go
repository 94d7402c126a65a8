package subscriber

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// maxNameGraphemes is the upper bound on a subscriber name, counted in
// grapheme clusters rather than bytes so multi-codepoint characters are not
// penalized.
const maxNameGraphemes = 2048

const forbiddenNameCharacters = `;:!?*()&$@#<>[]{}/\`

// ParseName validates a raw display name. It fails if the trimmed input is
// empty, exceeds maxNameGraphemes, or contains a forbidden character. Pure
// function, no side effects.
func ParseName(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if uniseg.GraphemeClusterCount(raw) > maxNameGraphemes {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidName, maxNameGraphemes)
	}
	if strings.ContainsAny(raw, forbiddenNameCharacters) {
		return "", fmt.Errorf("%w: contains a forbidden character", ErrInvalidName)
	}
	return raw, nil
}
