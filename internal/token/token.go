// Package token issues and resolves the signed bearer tokens that carry an
// authenticated identity between requests. Tokens are stateless: a token is
// honored iff its signature verifies against the server secret and its
// expiry has not passed. There is no revocation list.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the umbrella failure for any token that cannot be
// honored. The wrapped reasons below exist for internal diagnostics only;
// callers surface them all as a single unauthorized outcome.
var ErrInvalidToken = errors.New("invalid token")

var (
	ErrBadSignature   = fmt.Errorf("%w: bad signature", ErrInvalidToken)
	ErrExpired        = fmt.Errorf("%w: expired", ErrInvalidToken)
	ErrMissingSubject = fmt.Errorf("%w: missing subject", ErrInvalidToken)
)

// DefaultTTL is the fallback access-token lifetime when configuration does
// not specify one. The login endpoint normally requests a longer window.
const DefaultTTL = 15 * time.Minute

// Manager signs and verifies bearer tokens with a process-wide symmetric
// secret, loaded once at startup and never mutated. Concurrent use is safe.
type Manager struct {
	secret []byte
	issuer string
}

// NewManager creates a Manager signing with the given secret. The caller is
// responsible for ensuring the secret is non-empty before startup completes.
func NewManager(secret, issuer string) *Manager {
	return &Manager{secret: []byte(secret), issuer: issuer}
}

// Issue creates a signed HS256 token asserting the given subject, expiring
// at now + ttl. A zero ttl produces a token that is already expired by the
// time anyone resolves it.
func (m *Manager) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// Resolve verifies a token's signature and expiry and returns its subject.
// Expiry is evaluated at call time, never cached. Any failure satisfies
// errors.Is(err, ErrInvalidToken); malformed input degrades to that error,
// never to a panic or a distinct error path.
func (m *Manager) Resolve(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSignature
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		default:
			return "", fmt.Errorf("%w: malformed", ErrInvalidToken)
		}
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrMissingSubject
	}

	return claims.Subject, nil
}
