package service

import (
	"context"
	"testing"

	"github.com/twnguydev/uniteam/internal/model"
	"github.com/twnguydev/uniteam/internal/repository"
)

func TestCreateUserEmptyEmail(t *testing.T) {
	svc := NewUserService(repository.NewUserRepository(nil), nil, "http://localhost:3000")

	_, err := svc.Create(context.Background(), model.CreateUserRequest{Email: ""})
	if err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestUpdateUserEmptyEmail(t *testing.T) {
	svc := NewUserService(repository.NewUserRepository(nil), nil, "http://localhost:3000")

	_, err := svc.Update(context.Background(), 1, model.UpdateUserRequest{Email: ""})
	if err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}
