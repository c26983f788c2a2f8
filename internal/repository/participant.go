package repository

import (
	"context"
	"database/sql"

	"github.com/twnguydev/uniteam/internal/model"
)

// ParticipantRepository handles event participation persistence.
type ParticipantRepository struct {
	db *sql.DB
}

// NewParticipantRepository creates a new ParticipantRepository.
func NewParticipantRepository(db *sql.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Create links a user to an event. Joining the same event twice is a
// duplicate-entry error.
func (r *ParticipantRepository) Create(ctx context.Context, p *model.Participant) error {
	query := `INSERT INTO participants (user_id, event_id) VALUES ($1, $2) RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, p.UserID, p.EventID).Scan(&p.ID); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEntry
		}
		return err
	}

	return nil
}

// ListByEvent returns the participants of an event.
func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.Participant, error) {
	query := `SELECT id, user_id, event_id FROM participants WHERE event_id = $1 ORDER BY id`
	return r.list(ctx, query, eventID)
}

// ListByUser returns the events a user participates in.
func (r *ParticipantRepository) ListByUser(ctx context.Context, userID int64) ([]model.Participant, error) {
	query := `SELECT id, user_id, event_id FROM participants WHERE user_id = $1 ORDER BY id`
	return r.list(ctx, query, userID)
}

func (r *ParticipantRepository) list(ctx context.Context, query string, arg int64) ([]model.Participant, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []model.Participant
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.ID, &p.UserID, &p.EventID); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}

	return participants, rows.Err()
}

// Delete removes a user's participation in an event.
func (r *ParticipantRepository) Delete(ctx context.Context, userID, eventID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM participants WHERE user_id = $1 AND event_id = $2`, userID, eventID)
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
