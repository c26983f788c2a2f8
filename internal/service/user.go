package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/twnguydev/uniteam/internal/crypto"
	"github.com/twnguydev/uniteam/internal/mailer"
	"github.com/twnguydev/uniteam/internal/model"
	"github.com/twnguydev/uniteam/internal/repository"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUserNotFound  = errors.New("user not found")
)

// UserService handles user account management.
type UserService struct {
	repo        *repository.UserRepository
	mail        *mailer.Mailer
	frontendURL string
}

// NewUserService creates a new UserService. mail may be nil, in which case
// welcome messages are dropped.
func NewUserService(repo *repository.UserRepository, mail *mailer.Mailer, frontendURL string) *UserService {
	return &UserService{repo: repo, mail: mail, frontendURL: frontendURL}
}

// Create provisions an account with a generated initial password and mails
// the plaintext to the new user once. The plaintext is never persisted or
// logged.
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error) {
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}

	password, err := crypto.GeneratePassword(crypto.DefaultPasswordLength)
	if err != nil {
		return model.UserResponse{}, err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		GroupID:      req.GroupID,
		IsAdmin:      req.IsAdmin,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	if err := s.mail.SendWelcome(ctx, user.Email, user.FirstName, password, s.frontendURL); err != nil {
		// Account creation already committed; the admin can reset the
		// password if the mail never arrives.
		slog.Error("sending welcome email failed", "user_id", user.ID, "error", err)
	}

	return user.ToResponse(), nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(ctx context.Context, id int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return user.ToResponse(), nil
}

// List returns users with offset pagination.
func (s *UserService) List(ctx context.Context, skip, limit int) ([]model.UserResponse, error) {
	users, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}

	return responses, nil
}

// Update overwrites a user's profile. A non-empty Password resets the
// credential; the previous digest is discarded.
func (s *UserService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (model.UserResponse, error) {
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.GroupID = req.GroupID
	user.IsAdmin = req.IsAdmin

	if req.Password != "" {
		hash, err := crypto.HashPassword(req.Password)
		if err != nil {
			return model.UserResponse{}, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.UserResponse{}, ErrEmailTaken
		case errors.Is(err, repository.ErrUserNotFound):
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return user.ToResponse(), nil
}

// Delete removes a user account. Outstanding tokens for the account become
// invalid at next resolution.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}
