package service

import (
	"context"
	"errors"
	"testing"

	"github.com/twnguydev/uniteam/internal/model"
	"github.com/twnguydev/uniteam/internal/repository"
)

// fakeCatalogStore returns canned errors, standing in for the Postgres
// repository.
type fakeCatalogStore struct {
	deleteErr error
}

func (f *fakeCatalogStore) Create(_ context.Context, item *model.CatalogItem) error {
	item.ID = 1
	return nil
}

func (f *fakeCatalogStore) GetByID(_ context.Context, id int64) (*model.CatalogItem, error) {
	return &model.CatalogItem{ID: id, Name: "general"}, nil
}

func (f *fakeCatalogStore) List(_ context.Context, _, _ int) ([]model.CatalogItem, error) {
	return nil, nil
}

func (f *fakeCatalogStore) Update(_ context.Context, _ *model.CatalogItem) error {
	return nil
}

func (f *fakeCatalogStore) Delete(_ context.Context, _ int64) error {
	return f.deleteErr
}

func TestCatalogCreateEmptyName(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogStore{})

	_, err := svc.Create(context.Background(), model.NameRequest{Name: ""})
	if err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestCatalogDeleteNotFound(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogStore{deleteErr: repository.ErrNotFound})

	if err := svc.Delete(context.Background(), 1); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestCatalogDeleteStillReferenced(t *testing.T) {
	// Deleting a group/room/status still referenced by users or events is
	// a conflict, not an internal error.
	svc := NewCatalogService(&fakeCatalogStore{deleteErr: repository.ErrInUse})

	if err := svc.Delete(context.Background(), 1); !errors.Is(err, ErrItemInUse) {
		t.Errorf("expected ErrItemInUse, got %v", err)
	}
}
