package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twnguydev/uniteam/internal/crypto"
	"github.com/twnguydev/uniteam/internal/model"
	"github.com/twnguydev/uniteam/internal/repository"
	"github.com/twnguydev/uniteam/internal/token"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; the two are deliberately indistinguishable to prevent
	// account enumeration.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUnknownSubject marks a well-signed, unexpired token whose subject
	// no longer resolves to a user. It satisfies token.ErrInvalidToken.
	ErrUnknownSubject = fmt.Errorf("%w: unknown subject", token.ErrInvalidToken)
)

// UserStore is the persistence lookup the auth core needs. It is
// deliberately narrow so the core can be exercised without a database.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService verifies credentials and issues and resolves bearer tokens.
// It holds no mutable state; concurrent calls never interfere.
type AuthService struct {
	store  UserStore
	tokens *token.Manager
	ttl    time.Duration
}

// NewAuthService creates a new AuthService. ttl is the lifetime of tokens
// issued at login.
func NewAuthService(store UserStore, tokens *token.Manager, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = token.DefaultTTL
	}
	return &AuthService{store: store, tokens: tokens, ttl: ttl}
}

// Authenticate looks up the user by email and verifies the password against
// the stored digest. Any failure mode returns ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates and, on success, issues a bearer token whose subject
// is the user's email.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.TokenResponse, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return model.TokenResponse{}, err
	}

	tok, err := s.tokens.Issue(user.Email, s.ttl)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{AccessToken: tok, TokenType: "bearer"}, nil
}

// Resolve validates a bearer token and resolves its subject to a persisted
// user. A token whose subject was deleted after issuance is invalid even
// though its signature and expiry still check out. Every failure satisfies
// errors.Is(err, token.ErrInvalidToken).
func (s *AuthService) Resolve(ctx context.Context, tok string) (*model.User, error) {
	subject, err := s.tokens.Resolve(tok)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}

	return user, nil
}
