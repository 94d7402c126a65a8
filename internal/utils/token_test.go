package utils_test

import (
	"testing"

	"github.com/futureblog/newsletter/internal/utils"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	gen := utils.NewConfirmationTokenGenerator()
	for i := 0; i < 100; i++ {
		token, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(token) != 25 {
			t.Fatalf("unexpected token length %d: %q", len(token), token)
		}
		for _, c := range token {
			isAlnum := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
			if !isAlnum {
				t.Fatalf("token contains non-alphanumeric character %q: %s", c, token)
			}
		}
	}
}

func TestGenerate_TokensDiffer(t *testing.T) {
	gen := utils.NewConfirmationTokenGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}
