package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"churchapi/internal/database"
	"churchapi/internal/models"
)

var eventColumns = []string{"id", "title", "event_date", "category", "description"}

// EventRepository handles database operations for events
type EventRepository struct {
	db *database.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (id, title, event_date, category, description)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, event.ID, event.Title, event.Date, event.Category, event.Description)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// List returns events on or after filter.From and in filter.Category, when
// set, ordered by date
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	q := r.db.Builder().Select(eventColumns...).From("events")
	if filter.From != "" {
		q = q.Where(squirrel.GtOrEq{"event_date": filter.From})
	}
	if filter.Category != "" {
		q = q.Where(squirrel.Eq{"category": filter.Category})
	}
	q = q.OrderBy("event_date ASC", "id ASC")

	events := []models.Event{}
	if err := r.db.SelectBuilt(ctx, &events, q); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := `
		SELECT id, title, event_date, category, description
		FROM events
		WHERE id = ?
	`
	event := &models.Event{}
	err := r.db.GetContext(ctx, event, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// Update replaces every field of an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET title = ?, event_date = ?, category = ?, description = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query, event.Title, event.Date, event.Category, event.Description, event.ID)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// Delete removes an event and its checkins, reporting whether it existed
func (r *EventRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete event: %w", err)
	}
	return affected(result)
}
