package repository

import (
	"context"
	"fmt"

	"churchapi/internal/database"
	"churchapi/internal/models"
)

// CheckinRepository handles database operations for checkins
type CheckinRepository struct {
	db *database.DB
}

// NewCheckinRepository creates a new checkin repository
func NewCheckinRepository(db *database.DB) *CheckinRepository {
	return &CheckinRepository{db: db}
}

// Create records a checkin
func (r *CheckinRepository) Create(ctx context.Context, checkin *models.Checkin) error {
	query := `
		INSERT INTO checkins (id, child_id, event_id, checked_in_at, user_id)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, checkin.ID, checkin.ChildID, checkin.EventID, checkin.Timestamp, checkin.UserID)
	if err != nil {
		return fmt.Errorf("failed to create checkin: %w", err)
	}
	return nil
}

// ListByChild returns a child's checkins in the order they happened
func (r *CheckinRepository) ListByChild(ctx context.Context, childID string) ([]models.Checkin, error) {
	return r.list(ctx, "child_id", childID)
}

// ListByEvent returns an event's checkins in the order they happened
func (r *CheckinRepository) ListByEvent(ctx context.Context, eventID string) ([]models.Checkin, error) {
	return r.list(ctx, "event_id", eventID)
}

func (r *CheckinRepository) list(ctx context.Context, column, value string) ([]models.Checkin, error) {
	query := `
		SELECT id, child_id, event_id, checked_in_at, user_id
		FROM checkins
		WHERE ` + column + ` = ?
		ORDER BY checked_in_at, id
	`
	checkins := []models.Checkin{}
	if err := r.db.SelectContext(ctx, &checkins, query, value); err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}
	return checkins, nil
}
