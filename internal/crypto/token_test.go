package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestRandomToken(t *testing.T) {
	tok, err := RandomToken(32)
	if err != nil {
		t.Fatalf("RandomToken() unexpected error: %v", err)
	}
	if len(tok) != 32 {
		t.Fatalf("RandomToken() length = %d, want 32", len(tok))
	}
	for _, c := range tok {
		if !strings.ContainsRune(tokenAlphabet, c) {
			t.Errorf("RandomToken() contains %q outside the alphabet", c)
		}
	}
}

func TestRandomTokenTooShort(t *testing.T) {
	if _, err := RandomToken(8); !errors.Is(err, ErrTokenTooShort) {
		t.Errorf("RandomToken(8) error = %v, want %v", err, ErrTokenTooShort)
	}
}

func TestRandomTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := RandomToken(MinTokenLength)
		if err != nil {
			t.Fatalf("RandomToken() unexpected error: %v", err)
		}
		if seen[tok] {
			t.Fatalf("RandomToken() produced duplicate %q", tok)
		}
		seen[tok] = true
	}
}
