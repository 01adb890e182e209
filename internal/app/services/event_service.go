package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/app/repositories"
	"github.com/campusevents/eventsphere/internal/pkg/apperrors"
)

// EventService defines the interface for event-related operations
type EventService interface {
	CreateEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, filter repositories.EventFilter) ([]models.Event, error)
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo *repositories.EventRepository) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
	}
}

// validateDraft validates event data before it reaches the store.
func (s *eventServiceImpl) validateDraft(draft models.EventDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if !draft.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidationFailed, draft.Category)
	}
	if draft.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be a positive integer", apperrors.ErrValidationFailed)
	}
	if draft.CollegeID == "" {
		return fmt.Errorf("%w: college id is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateEvent validates the draft and appends the new event. The generated
// id encodes the college acronym, the current year and a per-college
// sequence number.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error) {
	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}
	return s.eventRepo.Create(ctx, draft)
}

// GetEventByID returns a single event.
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: event id is required", apperrors.ErrValidationFailed)
	}
	return s.eventRepo.GetByID(ctx, id)
}

// ListEvents returns events matching the filter; an empty result is not an
// error.
func (s *eventServiceImpl) ListEvents(ctx context.Context, filter repositories.EventFilter) ([]models.Event, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidationFailed, filter.Category)
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, filter.Status)
	}
	return s.eventRepo.List(ctx, filter)
}
