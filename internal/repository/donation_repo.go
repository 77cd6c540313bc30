package repository

import (
	"context"
	"fmt"

	"churchapi/internal/database"
	"churchapi/internal/models"
)

const donationColumns = "id, user_id, amount, category, created_at"

// DonationRepository handles database operations for donations
type DonationRepository struct {
	db *database.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *database.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// Create records a donation
func (r *DonationRepository) Create(ctx context.Context, d *models.Donation) error {
	query := `
		INSERT INTO donations (id, user_id, amount, category, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, d.ID, d.UserID, d.Amount, d.Category, d.CreatedAt); err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}
	return nil
}

// ListByUser returns a member's donations newest first
func (r *DonationRepository) ListByUser(ctx context.Context, userID string) ([]models.Donation, error) {
	donations := []models.Donation{}
	query := "SELECT " + donationColumns + " FROM donations WHERE user_id = ? ORDER BY created_at DESC, id DESC"
	if err := r.db.SelectContext(ctx, &donations, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

// List returns every donation newest first
func (r *DonationRepository) List(ctx context.Context) ([]models.Donation, error) {
	donations := []models.Donation{}
	query := "SELECT " + donationColumns + " FROM donations ORDER BY created_at DESC, id DESC"
	if err := r.db.SelectContext(ctx, &donations, query); err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}
