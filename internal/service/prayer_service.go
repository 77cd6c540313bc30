package service

import (
	"context"

	"churchapi/internal/models"
	"churchapi/internal/repository"
	"churchapi/internal/validation"
)

// PrayerInput is the body of a prayer request
type PrayerInput struct {
	Content   string `json:"content"`
	Anonymous bool   `json:"anonymous"`
}

// PrayerStatusInput is the body of a status change
type PrayerStatusInput struct {
	Status string `json:"status"`
}

// PrayerService collects prayer requests and tracks their status
type PrayerService struct {
	clock
	prayerRepo *repository.PrayerRepository
}

// NewPrayerService creates a new prayer service
func NewPrayerService(prayerRepo *repository.PrayerRepository) *PrayerService {
	return &PrayerService{prayerRepo: prayerRepo}
}

// Create stores a pending request; anonymous requests keep no author
func (s *PrayerService) Create(ctx context.Context, actor models.Actor, in PrayerInput) (*models.Prayer, error) {
	if err := validation.ValidateMinLength("content", in.Content, 2); err != nil {
		return nil, err
	}

	p := &models.Prayer{
		ID:        newID(),
		Content:   in.Content,
		Status:    models.PrayerPending,
		CreatedAt: s.timestamp(),
	}
	if !in.Anonymous {
		author := actor.UserID
		p.UserID = &author
	}

	if err := s.prayerRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PrayerService) List(ctx context.Context) ([]models.Prayer, error) {
	return s.prayerRepo.List(ctx)
}

func (s *PrayerService) UpdateStatus(ctx context.Context, id string, in PrayerStatusInput) (*models.Prayer, error) {
	if err := validation.ValidatePrayerStatus(in.Status); err != nil {
		return nil, err
	}

	p, err := s.prayerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("prayer")
	}

	if err := s.prayerRepo.UpdateStatus(ctx, p.ID, in.Status); err != nil {
		return nil, err
	}
	p.Status = in.Status
	return p, nil
}
