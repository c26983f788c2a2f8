package service

import (
	"context"
	"testing"
	"time"

	"github.com/twnguydev/uniteam/internal/model"
	"github.com/twnguydev/uniteam/internal/repository"
)

// fakeEventStore records the event handed to Create.
type fakeEventStore struct {
	created *model.Event
	stored  map[int64]*model.Event
}

func (f *fakeEventStore) Create(_ context.Context, event *model.Event) error {
	event.ID = 10
	f.created = event
	return nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id int64) (*model.Event, error) {
	event, ok := f.stored[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventStore) List(_ context.Context, _, _ int) ([]model.Event, error) {
	return nil, nil
}

func (f *fakeEventStore) Update(_ context.Context, event *model.Event) error {
	if _, ok := f.stored[event.ID]; !ok {
		return repository.ErrNotFound
	}
	f.stored[event.ID] = event
	return nil
}

func (f *fakeEventStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.stored[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.stored, id)
	return nil
}

func TestCreateEventEmptyName(t *testing.T) {
	svc := NewEventService(&fakeEventStore{})

	_, err := svc.Create(context.Background(), 1, model.EventRequest{
		Name: "",
	})
	if err != ErrEventNameRequired {
		t.Errorf("expected ErrEventNameRequired, got %v", err)
	}
}

func TestCreateEventInvalidDates(t *testing.T) {
	svc := NewEventService(&fakeEventStore{})

	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), 1, model.EventRequest{
		Name:      "standup",
		DateStart: start,
		DateEnd:   start.Add(-time.Hour),
	})
	if err != ErrEventDatesInvalid {
		t.Errorf("expected ErrEventDatesInvalid, got %v", err)
	}
}

func TestCreateEventDefaultsStatus(t *testing.T) {
	store := &fakeEventStore{}
	svc := NewEventService(store)

	resp, err := svc.Create(context.Background(), 7, model.EventRequest{
		Name:     "standup",
		StatusID: 0,
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if store.created.StatusID != DefaultStatusID {
		t.Errorf("persisted status = %d, want %d", store.created.StatusID, DefaultStatusID)
	}
	if resp.StatusID != DefaultStatusID {
		t.Errorf("response status = %d, want %d", resp.StatusID, DefaultStatusID)
	}
}

func TestCreateEventKeepsExplicitStatus(t *testing.T) {
	store := &fakeEventStore{}
	svc := NewEventService(store)

	resp, err := svc.Create(context.Background(), 7, model.EventRequest{
		Name:     "standup",
		StatusID: 2,
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if resp.StatusID != 2 {
		t.Errorf("response status = %d, want 2", resp.StatusID)
	}
}

func TestCreateEventSetsCallerAsHost(t *testing.T) {
	store := &fakeEventStore{}
	svc := NewEventService(store)

	resp, err := svc.Create(context.Background(), 7, model.EventRequest{
		Name: "standup",
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if store.created.HostID != 7 {
		t.Errorf("persisted host = %d, want 7", store.created.HostID)
	}
	if resp.HostID != 7 {
		t.Errorf("response host = %d, want 7", resp.HostID)
	}
}

func TestUpdateEventEmptyName(t *testing.T) {
	svc := NewEventService(&fakeEventStore{})

	_, err := svc.Update(context.Background(), 1, model.EventRequest{Name: ""})
	if err != ErrEventNameRequired {
		t.Errorf("expected ErrEventNameRequired, got %v", err)
	}
}

func TestUpdateEventPreservesHost(t *testing.T) {
	store := &fakeEventStore{stored: map[int64]*model.Event{
		10: {ID: 10, Name: "standup", StatusID: 2, HostID: 7},
	}}
	svc := NewEventService(store)

	resp, err := svc.Update(context.Background(), 10, model.EventRequest{
		Name:     "retro",
		StatusID: 1,
	})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	if resp.HostID != 7 {
		t.Errorf("host = %d, want 7 (host reference is immutable)", resp.HostID)
	}
	if resp.Name != "retro" {
		t.Errorf("name = %q, want %q", resp.Name, "retro")
	}
}
