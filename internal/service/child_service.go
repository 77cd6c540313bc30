package service

import (
	"context"
	"strings"

	"churchapi/internal/models"
	"churchapi/internal/repository"
	"churchapi/internal/validation"
)

// ChildInput is the body of a child create or update
type ChildInput struct {
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
}

func (in ChildInput) validate() error {
	if err := validation.ValidateName(in.Name); err != nil {
		return err
	}
	return validation.ValidateDate("birthdate", in.Birthdate)
}

// ChildService manages the children of the calling parent. Another
// parent's child is reported as not found.
type ChildService struct {
	childRepo *repository.ChildRepository
}

// NewChildService creates a new child service
func NewChildService(childRepo *repository.ChildRepository) *ChildService {
	return &ChildService{childRepo: childRepo}
}

func (s *ChildService) Create(ctx context.Context, actor models.Actor, in ChildInput) (*models.Child, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	child := &models.Child{
		ID:        newID(),
		Name:      strings.TrimSpace(in.Name),
		Birthdate: in.Birthdate,
		UserID:    actor.UserID,
	}
	if err := s.childRepo.Create(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (s *ChildService) ListMine(ctx context.Context, actor models.Actor) ([]models.Child, error) {
	return s.childRepo.ListByUser(ctx, actor.UserID)
}

func (s *ChildService) Get(ctx context.Context, actor models.Actor, id string) (*models.Child, error) {
	child, err := s.childRepo.GetForUser(ctx, id, actor.UserID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, notFound("child")
	}
	return child, nil
}

func (s *ChildService) Update(ctx context.Context, actor models.Actor, id string, in ChildInput) (*models.Child, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	child, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	child.Name = strings.TrimSpace(in.Name)
	child.Birthdate = in.Birthdate
	if err := s.childRepo.Update(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (s *ChildService) Delete(ctx context.Context, actor models.Actor, id string) error {
	found, err := s.childRepo.DeleteForUser(ctx, id, actor.UserID)
	if err != nil {
		return err
	}
	if !found {
		return notFound("child")
	}
	return nil
}
