package service

import (
	"context"

	"churchapi/internal/models"
	"churchapi/internal/repository"
	"churchapi/internal/validation"
)

// CheckinInput is the body of a checkin request
type CheckinInput struct {
	ChildID string `json:"child_id"`
	EventID string `json:"event_id"`
}

// CheckinService records attendance of a parent's children at events
type CheckinService struct {
	clock
	checkinRepo *repository.CheckinRepository
	childRepo   *repository.ChildRepository
	eventRepo   *repository.EventRepository
}

// NewCheckinService creates a new checkin service
func NewCheckinService(checkinRepo *repository.CheckinRepository, childRepo *repository.ChildRepository, eventRepo *repository.EventRepository) *CheckinService {
	return &CheckinService{
		checkinRepo: checkinRepo,
		childRepo:   childRepo,
		eventRepo:   eventRepo,
	}
}

// Create checks in one of the actor's children at an existing event
func (s *CheckinService) Create(ctx context.Context, actor models.Actor, in CheckinInput) (*models.Checkin, error) {
	if err := validation.ValidateUUID("child_id", in.ChildID); err != nil {
		return nil, err
	}
	if err := validation.ValidateUUID("event_id", in.EventID); err != nil {
		return nil, err
	}

	child, err := s.childRepo.GetForUser(ctx, in.ChildID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, notFound("child")
	}

	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, notFound("event")
	}

	checkin := &models.Checkin{
		ID:        newID(),
		ChildID:   child.ID,
		EventID:   event.ID,
		Timestamp: s.timestamp(),
		UserID:    actor.UserID,
	}
	if err := s.checkinRepo.Create(ctx, checkin); err != nil {
		return nil, err
	}
	return checkin, nil
}

// ListByChild returns the checkins of one of the actor's children
func (s *CheckinService) ListByChild(ctx context.Context, actor models.Actor, childID string) ([]models.Checkin, error) {
	child, err := s.childRepo.GetForUser(ctx, childID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, notFound("child")
	}
	return s.checkinRepo.ListByChild(ctx, child.ID)
}

// ListByEvent returns every checkin at an event
func (s *CheckinService) ListByEvent(ctx context.Context, eventID string) ([]models.Checkin, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, notFound("event")
	}
	return s.checkinRepo.ListByEvent(ctx, event.ID)
}
