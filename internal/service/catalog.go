package service

import (
	"context"
	"errors"

	"github.com/twnguydev/uniteam/internal/model"
	"github.com/twnguydev/uniteam/internal/repository"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrItemNotFound = errors.New("record not found")
	ErrItemInUse    = errors.New("record is still in use")
)

// CatalogStore is the persistence surface a CatalogService needs.
type CatalogStore interface {
	Create(ctx context.Context, item *model.CatalogItem) error
	GetByID(ctx context.Context, id int64) (*model.CatalogItem, error)
	List(ctx context.Context, skip, limit int) ([]model.CatalogItem, error)
	Update(ctx context.Context, item *model.CatalogItem) error
	Delete(ctx context.Context, id int64) error
}

// CatalogService handles one of the flat reference entities (groups, rooms,
// statuses).
type CatalogService struct {
	repo CatalogStore
}

// NewCatalogService creates a new CatalogService over the given store.
func NewCatalogService(repo CatalogStore) *CatalogService {
	return &CatalogService{repo: repo}
}

// Create adds an item.
func (s *CatalogService) Create(ctx context.Context, req model.NameRequest) (model.CatalogItem, error) {
	if req.Name == "" {
		return model.CatalogItem{}, ErrNameRequired
	}

	item := model.CatalogItem{Name: req.Name}
	if err := s.repo.Create(ctx, &item); err != nil {
		return model.CatalogItem{}, err
	}

	return item, nil
}

// Get retrieves an item by ID.
func (s *CatalogService) Get(ctx context.Context, id int64) (model.CatalogItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.CatalogItem{}, ErrItemNotFound
		}
		return model.CatalogItem{}, err
	}

	return *item, nil
}

// List returns items with offset pagination.
func (s *CatalogService) List(ctx context.Context, skip, limit int) ([]model.CatalogItem, error) {
	return s.repo.List(ctx, skip, limit)
}

// Update renames an item.
func (s *CatalogService) Update(ctx context.Context, id int64, req model.NameRequest) (model.CatalogItem, error) {
	if req.Name == "" {
		return model.CatalogItem{}, ErrNameRequired
	}

	item := model.CatalogItem{ID: id, Name: req.Name}
	if err := s.repo.Update(ctx, &item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.CatalogItem{}, ErrItemNotFound
		}
		return model.CatalogItem{}, err
	}

	return item, nil
}

// Delete removes an item. Items referenced by users or events cannot be
// deleted while the references exist.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrItemNotFound
	case errors.Is(err, repository.ErrInUse):
		return ErrItemInUse
	}
	return err
}
