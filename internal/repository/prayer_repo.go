package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"churchapi/internal/database"
	"churchapi/internal/models"
)

// PrayerRepository handles database operations for prayer requests
type PrayerRepository struct {
	db *database.DB
}

// NewPrayerRepository creates a new prayer repository
func NewPrayerRepository(db *database.DB) *PrayerRepository {
	return &PrayerRepository{db: db}
}

// Create inserts a new prayer request; a nil UserID stores NULL
func (r *PrayerRepository) Create(ctx context.Context, p *models.Prayer) error {
	query := `
		INSERT INTO prayers (id, content, user_id, status, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Content, p.UserID, p.Status, p.CreatedAt); err != nil {
		return fmt.Errorf("failed to create prayer: %w", err)
	}
	return nil
}

// List returns every prayer request newest first
func (r *PrayerRepository) List(ctx context.Context) ([]models.Prayer, error) {
	query := `
		SELECT id, content, user_id, status, created_at
		FROM prayers
		ORDER BY created_at DESC, id DESC
	`
	prayers := []models.Prayer{}
	if err := r.db.SelectContext(ctx, &prayers, query); err != nil {
		return nil, fmt.Errorf("failed to list prayers: %w", err)
	}
	return prayers, nil
}

// GetByID retrieves a prayer request by ID
func (r *PrayerRepository) GetByID(ctx context.Context, id string) (*models.Prayer, error) {
	query := `
		SELECT id, content, user_id, status, created_at
		FROM prayers
		WHERE id = ?
	`
	p := &models.Prayer{}
	err := r.db.GetContext(ctx, p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prayer: %w", err)
	}
	return p, nil
}

// UpdateStatus sets a prayer request's status
func (r *PrayerRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE prayers SET status = ? WHERE id = ?", status, id); err != nil {
		return fmt.Errorf("failed to update prayer status: %w", err)
	}
	return nil
}
