package utils

import (
	"crypto/rand"
	"fmt"
)

const (
	// tokenLength balances URL brevity against brute-force resistance:
	// 62^25 keyspace.
	tokenLength   = 25
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// ConfirmationTokenGenerator produces random alphanumeric confirmation
// tokens from a cryptographically secure source. It holds no state.
type ConfirmationTokenGenerator struct{}

func NewConfirmationTokenGenerator() *ConfirmationTokenGenerator {
	return &ConfirmationTokenGenerator{}
}

// Generate returns a 25-character token drawn uniformly from [A-Za-z0-9].
// Rejection sampling keeps the distribution uniform over the 62-character
// alphabet.
func (g *ConfirmationTokenGenerator) Generate() (string, error) {
	token := make([]byte, 0, tokenLength)
	buf := make([]byte, 32)
	for len(token) < tokenLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			// 248 is the largest multiple of 62 below 256; bytes at or
			// above it would skew the distribution.
			if b >= 248 {
				continue
			}
			token = append(token, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(token) == tokenLength {
				break
			}
		}
	}
	return string(token), nil
}
