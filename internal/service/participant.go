package service

import (
	"context"
	"errors"

	"github.com/twnguydev/uniteam/internal/model"
	"github.com/twnguydev/uniteam/internal/repository"
)

var (
	ErrAlreadyParticipant  = errors.New("user already participates in this event")
	ErrParticipantNotFound = errors.New("participation not found")
)

// ParticipantService handles event participation.
type ParticipantService struct {
	repo   *repository.ParticipantRepository
	events *repository.EventRepository
}

// NewParticipantService creates a new ParticipantService.
func NewParticipantService(repo *repository.ParticipantRepository, events *repository.EventRepository) *ParticipantService {
	return &ParticipantService{repo: repo, events: events}
}

// Join adds the user to an event. Joining twice is a conflict.
func (s *ParticipantService) Join(ctx context.Context, userID, eventID int64) (model.Participant, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Participant{}, ErrEventNotFound
		}
		return model.Participant{}, err
	}

	p := model.Participant{UserID: userID, EventID: eventID}
	if err := s.repo.Create(ctx, &p); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return model.Participant{}, ErrAlreadyParticipant
		}
		return model.Participant{}, err
	}

	return p, nil
}

// Leave removes the user from an event.
func (s *ParticipantService) Leave(ctx context.Context, userID, eventID int64) error {
	err := s.repo.Delete(ctx, userID, eventID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrParticipantNotFound
	}
	return err
}

// ListByEvent returns the participants of an event.
func (s *ParticipantService) ListByEvent(ctx context.Context, eventID int64) ([]model.Participant, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

// ListByUser returns the events a user participates in.
func (s *ParticipantService) ListByUser(ctx context.Context, userID int64) ([]model.Participant, error) {
	return s.repo.ListByUser(ctx, userID)
}
