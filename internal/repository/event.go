package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/twnguydev/uniteam/internal/model"
)

// EventRepository handles event persistence operations.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, name, COALESCE(date_start, 'epoch'::timestamptz), COALESCE(date_end, 'epoch'::timestamptz),
	COALESCE(room_id, 0), COALESCE(group_id, 0), description, COALESCE(status_id, 0), COALESCE(host_id, 0),
	created_at, updated_at`

// Create inserts a new event and sets the generated ID on the event struct.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `INSERT INTO events (name, date_start, date_end, room_id, group_id, description, status_id, host_id)
	          VALUES ($1, $2, $3, NULLIF($4, 0), NULLIF($5, 0), $6, $7, $8)
	          RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		event.Name, event.DateStart, event.DateEnd, event.RoomID, event.GroupID,
		event.Description, event.StatusID, event.HostID,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

// GetByID retrieves an event by its ID.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event := &model.Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.Name, &event.DateStart, &event.DateEnd,
		&event.RoomID, &event.GroupID, &event.Description, &event.StatusID, &event.HostID,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return event, nil
}

// List returns events ordered by start date with offset pagination.
func (r *EventRepository) List(ctx context.Context, skip, limit int) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date_start, id OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var event model.Event
		if err := rows.Scan(
			&event.ID, &event.Name, &event.DateStart, &event.DateEnd,
			&event.RoomID, &event.GroupID, &event.Description, &event.StatusID, &event.HostID,
			&event.CreatedAt, &event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// Update overwrites an event's fields. The host reference is immutable.
func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	query := `UPDATE events
	          SET name = $1, date_start = $2, date_end = $3, room_id = NULLIF($4, 0),
	              group_id = NULLIF($5, 0), description = $6, status_id = $7, updated_at = now()
	          WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		event.Name, event.DateStart, event.DateEnd, event.RoomID, event.GroupID,
		event.Description, event.StatusID, event.ID,
	)
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

// Delete removes an event. Participations cascade.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
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
