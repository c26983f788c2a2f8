package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndResolve(t *testing.T) {
	m := NewManager("test-secret", "uniteam")

	tok, err := m.Issue("a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	if tok == "" {
		t.Fatal("Issue() returned empty string")
	}

	subject, err := m.Resolve(tok)
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if subject != "a@x.com" {
		t.Errorf("Resolve() subject = %q, want %q", subject, "a@x.com")
	}
}

func TestResolveWrongSecret(t *testing.T) {
	tok, err := NewManager("correct-secret", "uniteam").Issue("a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	_, err = NewManager("wrong-secret", "uniteam").Resolve(tok)
	if !errors.Is(err, ErrBadSignature) {
		t.Errorf("expected ErrBadSignature, got %v", err)
	}
}

func TestResolveTamperedSignature(t *testing.T) {
	m := NewManager("test-secret", "uniteam")

	tok, err := m.Issue("a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	// Flip the last signature character.
	last := tok[len(tok)-1]
	altered := byte('A')
	if last == 'A' {
		altered = 'B'
	}
	tampered := tok[:len(tok)-1] + string(altered)

	_, err = m.Resolve(tampered)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected an invalid-token error, got %v", err)
	}
}

func TestResolveZeroTTLIsExpired(t *testing.T) {
	m := NewManager("test-secret", "uniteam")

	tok, err := m.Issue("a@x.com", 0)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	_, err = m.Resolve(tok)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestResolveExpired(t *testing.T) {
	m := NewManager("test-secret", "uniteam")

	tok, err := m.Issue("a@x.com", -time.Minute)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	_, err = m.Resolve(tok)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Error("ErrExpired should satisfy errors.Is(err, ErrInvalidToken)")
	}
}

func TestResolveMissingSubject(t *testing.T) {
	m := NewManager("test-secret", "uniteam")

	claims := jwt.RegisteredClaims{
		Issuer:    "uniteam",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	_, err = m.Resolve(tok)
	if !errors.Is(err, ErrMissingSubject) {
		t.Errorf("expected ErrMissingSubject, got %v", err)
	}
}

func TestResolveMalformed(t *testing.T) {
	m := NewManager("test-secret", "uniteam")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Resolve(tok)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Resolve(%q): expected an invalid-token error, got %v", tok, err)
		}
	}
}

func TestResolveWrongSigningMethod(t *testing.T) {
	m := NewManager("test-secret", "uniteam")

	// alg=none tokens must never be honored.
	claims := jwt.RegisteredClaims{
		Issuer:    "uniteam",
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err := m.Resolve(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected an invalid-token error, got %v", err)
	}
}
