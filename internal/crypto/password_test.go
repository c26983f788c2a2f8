package crypto

import (
	"strings"
	"testing"
)

func TestGeneratePassword(t *testing.T) {
	password, err := GeneratePassword(DefaultPasswordLength)
	if err != nil {
		t.Fatalf("GeneratePassword() unexpected error: %v", err)
	}

	if len(password) != DefaultPasswordLength {
		t.Errorf("GeneratePassword() length = %d, want %d", len(password), DefaultPasswordLength)
	}

	for _, c := range password {
		if !strings.ContainsRune(passwordChars, c) {
			t.Errorf("GeneratePassword() produced unexpected character %q", c)
		}
	}
}

func TestGeneratePasswordTooShort(t *testing.T) {
	if _, err := GeneratePassword(4); err != ErrPasswordTooShort {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestGeneratePasswordDiffers(t *testing.T) {
	p1, err := GeneratePassword(16)
	if err != nil {
		t.Fatalf("GeneratePassword() unexpected error: %v", err)
	}
	p2, err := GeneratePassword(16)
	if err != nil {
		t.Fatalf("GeneratePassword() unexpected error: %v", err)
	}

	if p1 == p2 {
		t.Error("GeneratePassword() produced identical passwords")
	}
}
