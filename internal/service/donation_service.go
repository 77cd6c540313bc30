package service

import (
	"context"
	"strings"

	"churchapi/internal/models"
	"churchapi/internal/repository"
	"churchapi/internal/validation"
)

// DonationInput is the body of a donation. Amount is a pointer so a
// missing amount can be told apart from zero.
type DonationInput struct {
	Amount   *float64 `json:"amount"`
	Category string   `json:"category"`
}

// DonationService records member donations
type DonationService struct {
	clock
	donationRepo *repository.DonationRepository
}

// NewDonationService creates a new donation service
func NewDonationService(donationRepo *repository.DonationRepository) *DonationService {
	return &DonationService{donationRepo: donationRepo}
}

func (s *DonationService) Create(ctx context.Context, actor models.Actor, in DonationInput) (*models.Donation, error) {
	if err := validation.ValidateAmount(in.Amount); err != nil {
		return nil, err
	}
	if err := validation.ValidateLength("category", in.Category, 2, validation.MaxCategoryLength); err != nil {
		return nil, err
	}

	d := &models.Donation{
		ID:        newID(),
		UserID:    actor.UserID,
		Amount:    *in.Amount,
		Category:  strings.TrimSpace(in.Category),
		CreatedAt: s.timestamp(),
	}
	if err := s.donationRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DonationService) ListMine(ctx context.Context, actor models.Actor) ([]models.Donation, error) {
	return s.donationRepo.ListByUser(ctx, actor.UserID)
}

func (s *DonationService) List(ctx context.Context) ([]models.Donation, error) {
	return s.donationRepo.List(ctx)
}
