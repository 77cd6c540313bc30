package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"churchapi/internal/database"
	"churchapi/internal/models"
)

// ChildRepository handles database operations for children.
// Every read and write except Create is scoped to the owning user.
type ChildRepository struct {
	db *database.DB
}

// NewChildRepository creates a new child repository
func NewChildRepository(db *database.DB) *ChildRepository {
	return &ChildRepository{db: db}
}

// Create inserts a new child
func (r *ChildRepository) Create(ctx context.Context, child *models.Child) error {
	query := `
		INSERT INTO children (id, name, birthdate, user_id)
		VALUES (?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, child.ID, child.Name, child.Birthdate, child.UserID); err != nil {
		return fmt.Errorf("failed to create child: %w", err)
	}
	return nil
}

// ListByUser returns the children owned by userID ordered by name
func (r *ChildRepository) ListByUser(ctx context.Context, userID string) ([]models.Child, error) {
	query := `
		SELECT id, name, birthdate, user_id
		FROM children
		WHERE user_id = ?
		ORDER BY name, id
	`
	children := []models.Child{}
	if err := r.db.SelectContext(ctx, &children, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	return children, nil
}

// GetForUser retrieves a child only if userID owns it
func (r *ChildRepository) GetForUser(ctx context.Context, id, userID string) (*models.Child, error) {
	query := `
		SELECT id, name, birthdate, user_id
		FROM children
		WHERE id = ? AND user_id = ?
	`
	child := &models.Child{}
	err := r.db.GetContext(ctx, child, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get child: %w", err)
	}
	return child, nil
}

// Update replaces a child's name and birthdate
func (r *ChildRepository) Update(ctx context.Context, child *models.Child) error {
	query := `
		UPDATE children
		SET name = ?, birthdate = ?
		WHERE id = ? AND user_id = ?
	`
	if _, err := r.db.ExecContext(ctx, query, child.Name, child.Birthdate, child.ID, child.UserID); err != nil {
		return fmt.Errorf("failed to update child: %w", err)
	}
	return nil
}

// DeleteForUser removes a child owned by userID, reporting whether it existed
func (r *ChildRepository) DeleteForUser(ctx context.Context, id, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM children WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete child: %w", err)
	}
	return affected(result)
}
