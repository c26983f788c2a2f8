package service

import (
	"context"
	"errors"

	"github.com/twnguydev/uniteam/internal/model"
	"github.com/twnguydev/uniteam/internal/repository"
)

var (
	ErrMessageRequired      = errors.New("message is required")
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationStore is the persistence surface a NotificationService needs.
type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
	GetByID(ctx context.Context, id int64) (*model.Notification, error)
	ListByUser(ctx context.Context, userID int64, skip, limit int) ([]model.Notification, error)
	Delete(ctx context.Context, id int64) error
}

// NotificationService handles user notifications.
type NotificationService struct {
	repo NotificationStore
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo NotificationStore) *NotificationService {
	return &NotificationService{repo: repo}
}

// Create records a notification for a user.
func (s *NotificationService) Create(ctx context.Context, req model.NotificationRequest) (model.Notification, error) {
	if req.Message == "" {
		return model.Notification{}, ErrMessageRequired
	}

	n := model.Notification{UserID: req.UserID, Message: req.Message}
	if err := s.repo.Create(ctx, &n); err != nil {
		return model.Notification{}, err
	}

	return n, nil
}

// ListForUser returns a user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID int64, skip, limit int) ([]model.Notification, error) {
	return s.repo.ListByUser(ctx, userID, skip, limit)
}

// Delete removes a notification. Regular users can only delete their own;
// someone else's notification reads as not-found so ownership cannot be
// probed. Admins can delete any notification.
func (s *NotificationService) Delete(ctx context.Context, callerID int64, callerIsAdmin bool, id int64) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}

	if n.UserID != callerID && !callerIsAdmin {
		return ErrNotificationNotFound
	}

	err = s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotificationNotFound
	}
	return err
}
