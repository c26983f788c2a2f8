package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/twnguydev/uniteam/internal/model"
)

// CatalogRepository persists one of the flat id/name reference tables.
// Groups, rooms and statuses share this shape.
type CatalogRepository struct {
	db    *sql.DB
	table string
}

// NewGroupRepository creates a repository over the groups table.
func NewGroupRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db, table: "groups"}
}

// NewRoomRepository creates a repository over the rooms table.
func NewRoomRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db, table: "rooms"}
}

// NewStatusRepository creates a repository over the statuses table.
func NewStatusRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db, table: "statuses"}
}

// Create inserts an item and sets the generated ID.
func (r *CatalogRepository) Create(ctx context.Context, item *model.CatalogItem) error {
	query := `INSERT INTO ` + r.table + ` (name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, item.Name).Scan(&item.ID)
}

// GetByID retrieves an item by ID.
func (r *CatalogRepository) GetByID(ctx context.Context, id int64) (*model.CatalogItem, error) {
	query := `SELECT id, name FROM ` + r.table + ` WHERE id = $1`

	item := &model.CatalogItem{}
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return item, nil
}

// List returns items ordered by ID with offset pagination.
func (r *CatalogRepository) List(ctx context.Context, skip, limit int) ([]model.CatalogItem, error) {
	query := `SELECT id, name FROM ` + r.table + ` ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.CatalogItem
	for rows.Next() {
		var item model.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Update renames an item.
func (r *CatalogRepository) Update(ctx context.Context, item *model.CatalogItem) error {
	query := `UPDATE ` + r.table + ` SET name = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, item.Name, item.ID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an item. An item still referenced by users or events
// cannot be deleted and returns ErrInUse.
func (r *CatalogRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInUse
		}
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
