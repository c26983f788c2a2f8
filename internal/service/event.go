package service

import (
	"context"
	"errors"

	"github.com/twnguydev/uniteam/internal/model"
	"github.com/twnguydev/uniteam/internal/repository"
)

var (
	ErrEventNameRequired = errors.New("event name is required")
	ErrEventNotFound     = errors.New("event not found")
	ErrEventDatesInvalid = errors.New("event end date must not precede its start date")
)

// DefaultStatusID applies when an event is created without a status.
const DefaultStatusID = 4

// EventStore is the persistence surface an EventService needs.
type EventStore interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	List(ctx context.Context, skip, limit int) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService handles event business logic.
type EventService struct {
	repo EventStore
}

// NewEventService creates a new EventService.
func NewEventService(repo EventStore) *EventService {
	return &EventService{repo: repo}
}

func validateEvent(req model.EventRequest) error {
	if req.Name == "" {
		return ErrEventNameRequired
	}
	if !req.DateStart.IsZero() && !req.DateEnd.IsZero() && req.DateEnd.Before(req.DateStart) {
		return ErrEventDatesInvalid
	}
	return nil
}

// Create books an event. The host is always the authenticated caller,
// never taken from the payload.
func (s *EventService) Create(ctx context.Context, hostID int64, req model.EventRequest) (model.EventResponse, error) {
	if err := validateEvent(req); err != nil {
		return model.EventResponse{}, err
	}

	statusID := req.StatusID
	if statusID == 0 {
		statusID = DefaultStatusID
	}

	event := &model.Event{
		Name:        req.Name,
		DateStart:   req.DateStart,
		DateEnd:     req.DateEnd,
		RoomID:      req.RoomID,
		GroupID:     req.GroupID,
		Description: req.Description,
		StatusID:    statusID,
		HostID:      hostID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return model.EventResponse{}, err
	}

	return event.ToResponse(), nil
}

// Get retrieves an event by ID.
func (s *EventService) Get(ctx context.Context, id int64) (model.EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.EventResponse{}, ErrEventNotFound
		}
		return model.EventResponse{}, err
	}

	return event.ToResponse(), nil
}

// List returns events with offset pagination.
func (s *EventService) List(ctx context.Context, skip, limit int) ([]model.EventResponse, error) {
	events, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]model.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, events[i].ToResponse())
	}

	return responses, nil
}

// Update overwrites an event's fields. The host reference never changes.
func (s *EventService) Update(ctx context.Context, id int64, req model.EventRequest) (model.EventResponse, error) {
	if err := validateEvent(req); err != nil {
		return model.EventResponse{}, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.EventResponse{}, ErrEventNotFound
		}
		return model.EventResponse{}, err
	}

	event.Name = req.Name
	event.DateStart = req.DateStart
	event.DateEnd = req.DateEnd
	event.RoomID = req.RoomID
	event.GroupID = req.GroupID
	event.Description = req.Description
	if req.StatusID != 0 {
		event.StatusID = req.StatusID
	}

	if err := s.repo.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.EventResponse{}, ErrEventNotFound
		}
		return model.EventResponse{}, err
	}

	return event.ToResponse(), nil
}

// Delete cancels and removes an event.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEventNotFound
	}
	return err
}
