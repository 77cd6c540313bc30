package service

import (
	"context"
	"strings"

	"churchapi/internal/models"
	"churchapi/internal/repository"
	"churchapi/internal/validation"
)

// EventInput is the body of an event create or update
type EventInput struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// validate checks the input and returns its date normalized to UTC
func (in EventInput) validate() (string, error) {
	if err := validation.ValidateLength("title", in.Title, 2, validation.MaxTitleLength); err != nil {
		return "", err
	}
	date, err := validation.NormalizeDateTime("date", in.Date)
	if err != nil {
		return "", err
	}
	if err := validation.ValidateLength("category", in.Category, 1, validation.MaxCategoryLength); err != nil {
		return "", err
	}
	if err := validation.ValidateRequired("description", in.Description); err != nil {
		return "", err
	}
	return date, nil
}

func (in EventInput) apply(event *models.Event, date string) {
	event.Title = strings.TrimSpace(in.Title)
	event.Date = date
	event.Category = strings.TrimSpace(in.Category)
	event.Description = in.Description
}

// EventService manages the event calendar
type EventService struct {
	eventRepo *repository.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// List returns events matching filter, earliest first. filter.From is
// compared as an instant, whatever offset it was given in.
func (s *EventService) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	if filter.From != "" {
		from, err := validation.NormalizeDateTime("date", filter.From)
		if err != nil {
			return nil, err
		}
		filter.From = from
	}
	return s.eventRepo.List(ctx, filter)
}

func (s *EventService) Create(ctx context.Context, in EventInput) (*models.Event, error) {
	date, err := in.validate()
	if err != nil {
		return nil, err
	}

	event := &models.Event{ID: newID()}
	in.apply(event, date)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, notFound("event")
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, in EventInput) (*models.Event, error) {
	date, err := in.validate()
	if err != nil {
		return nil, err
	}

	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(event, date)
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event together with its checkins
func (s *EventService) Delete(ctx context.Context, id string) error {
	found, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return notFound("event")
	}
	return nil
}
