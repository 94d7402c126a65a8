package subscriber_test

import (
	"strings"
	"testing"

	"github.com/futureblog/newsletter/internal/core/domain/subscriber"
)

func TestParseName_AllowedCharactersAccepted(t *testing.T) {
	for _, name := range []string{"andre", "Andre Heber", "Ursula le Guin", "日本語の名前"} {
		parsed, err := subscriber.ParseName(name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if parsed != name {
			t.Fatalf("parsed name changed: got %q want %q", parsed, name)
		}
	}
}

func TestParseName_EmptyOrWhitespaceRejected(t *testing.T) {
	for _, name := range []string{"", " ", "\t \n"} {
		if _, err := subscriber.ParseName(name); err == nil {
			t.Fatalf("expected error for %q", name)
		}
	}
}

func TestParseName_ForbiddenCharactersRejected(t *testing.T) {
	forbidden := []string{";", ":", "!", "?", "*", "(", ")", "&", "$", "@", "#", "<", ">", "[", "]", "{", "}", "/", `\`}
	for _, ch := range forbidden {
		name := "name" + ch
		if _, err := subscriber.ParseName(name); err == nil {
			t.Fatalf("expected error for name containing %q", ch)
		}
	}
}

func TestParseName_LengthBoundary(t *testing.T) {
	atLimit := strings.Repeat("a", 2048)
	if _, err := subscriber.ParseName(atLimit); err != nil {
		t.Fatalf("2048-grapheme name should be accepted: %v", err)
	}

	tooLong := strings.Repeat("a", 2049)
	if _, err := subscriber.ParseName(tooLong); err == nil {
		t.Fatal("2049-grapheme name should be rejected")
	}
}

func TestParseName_GraphemesCountedNotBytes(t *testing.T) {
	// 2048 graphemes, far more than 2048 bytes.
	name := strings.Repeat("é", 2048)
	if _, err := subscriber.ParseName(name); err != nil {
		t.Fatalf("multi-byte graphemes within the limit should be accepted: %v", err)
	}
}
