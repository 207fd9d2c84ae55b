package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campushub/eventhub/internal/app/models"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
)

// EventRepository handles event catalog database operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// CreateEvent stores a new event and returns its identifier
func (r *EventRepository) CreateEvent(ctx context.Context, event *models.Event) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO events (name, poster)
		VALUES (?, ?)`,
		event.Name, event.Poster)
	if err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new event id: %w", err)
	}

	return id, nil
}

// GetAllEvents returns all events in insertion order
func (r *EventRepository) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, poster
		FROM events
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.Name, &event.Poster); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// DeleteEvent removes an event permanently. Registrations referencing the
// event name are left untouched; they are denormalized copies.
func (r *EventRepository) DeleteEvent(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
