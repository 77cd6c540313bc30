package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"churchapi/internal/database"
	"churchapi/internal/models"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *database.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *database.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create inserts a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	query := `
		INSERT INTO announcements (id, title, description, created_at)
		VALUES (?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, a.ID, a.Title, a.Description, a.CreatedAt); err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}

// List returns announcements newest first
func (r *AnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	query := `
		SELECT id, title, description, created_at
		FROM announcements
		ORDER BY created_at DESC, id DESC
	`
	announcements := []models.Announcement{}
	if err := r.db.SelectContext(ctx, &announcements, query); err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	query := `
		SELECT id, title, description, created_at
		FROM announcements
		WHERE id = ?
	`
	a := &models.Announcement{}
	err := r.db.GetContext(ctx, a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	return a, nil
}
