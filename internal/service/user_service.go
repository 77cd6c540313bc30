package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"churchapi/internal/models"
	"churchapi/internal/repository"
	"churchapi/internal/validation"
)

// ProfileInput is the body of a profile update
type ProfileInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserService exposes account records
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns every account
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// Me returns the caller's stored record
func (s *UserService) Me(ctx context.Context, actor models.Actor) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("user")
	}
	return user, nil
}

// UpdateMe changes the caller's name and email
func (s *UserService) UpdateMe(ctx context.Context, actor models.Actor, in ProfileInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	user, err := s.Me(ctx, actor)
	if err != nil {
		return nil, err
	}

	if email != user.Email {
		other, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing user: %w", err)
		}
		if other != nil {
			return nil, ErrEmailTaken
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, user.ID, name, email); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	user.Name = name
	user.Email = email
	return user, nil
}

// SetRole changes the role of the account registered with email
func (s *UserService) SetRole(ctx context.Context, email, role string) (*models.User, error) {
	if err := validation.ValidateRole(role); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("user")
	}

	found, err := s.userRepo.UpdateRole(ctx, user.ID, role)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound("user")
	}

	user.Role = role
	return user, nil
}
