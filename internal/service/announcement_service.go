package service

import (
	"context"
	"strings"

	"churchapi/internal/models"
	"churchapi/internal/repository"
	"churchapi/internal/validation"
)

// AnnouncementInput is the body of an announcement create
type AnnouncementInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AnnouncementService publishes notices
type AnnouncementService struct {
	clock
	announcementRepo *repository.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcementRepo *repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	return s.announcementRepo.List(ctx)
}

func (s *AnnouncementService) Create(ctx context.Context, in AnnouncementInput) (*models.Announcement, error) {
	if err := validation.ValidateLength("title", in.Title, 2, validation.MaxTitleLength); err != nil {
		return nil, err
	}
	if err := validation.ValidateMinLength("description", in.Description, 2); err != nil {
		return nil, err
	}

	a := &models.Announcement{
		ID:          newID(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		CreatedAt:   s.timestamp(),
	}
	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnnouncementService) Get(ctx context.Context, id string) (*models.Announcement, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound("announcement")
	}
	return a, nil
}
