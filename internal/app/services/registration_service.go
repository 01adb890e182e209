package services

import (
	"context"
	"fmt"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/app/repositories"
	"github.com/campusevents/eventsphere/internal/pkg/apperrors"
)

// RegistrationService defines the interface for registration, attendance and
// feedback operations
type RegistrationService interface {
	Register(ctx context.Context, eventID, studentID, collegeID string) (*models.Registration, error)
	MarkAttendance(ctx context.Context, eventID, studentID string) (*models.Registration, error)
	SubmitFeedback(ctx context.Context, eventID, studentID, collegeID string, rating int, comment *string) (*models.Feedback, error)
	GetEventRegistrations(ctx context.Context, eventID string) ([]models.Registration, error)
	GetStudentRegistrations(ctx context.Context, studentID string) ([]models.Registration, error)
	GetEventFeedback(ctx context.Context, eventID string) ([]models.Feedback, error)
}

// registrationServiceImpl implements the RegistrationService interface
type registrationServiceImpl struct {
	registrationRepo *repositories.RegistrationRepository
	feedbackRepo     *repositories.FeedbackRepository
	eventRepo        *repositories.EventRepository
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(
	registrationRepo *repositories.RegistrationRepository,
	feedbackRepo *repositories.FeedbackRepository,
	eventRepo *repositories.EventRepository,
) RegistrationService {
	return &registrationServiceImpl{
		registrationRepo: registrationRepo,
		feedbackRepo:     feedbackRepo,
		eventRepo:        eventRepo,
	}
}

// Register records a student's registration for an event. A second
// registration for the same (event, student) pair is a conflict, as is
// registering for an event at capacity.
func (s *registrationServiceImpl) Register(ctx context.Context, eventID, studentID, collegeID string) (*models.Registration, error) {
	if eventID == "" || studentID == "" {
		return nil, fmt.Errorf("%w: event id and student id are required", apperrors.ErrValidationFailed)
	}
	return s.registrationRepo.Register(ctx, eventID, studentID, collegeID)
}

// MarkAttendance flags a registration as attended. Repeating the call for
// the same registration is a conflict and does not touch the counter again.
func (s *registrationServiceImpl) MarkAttendance(ctx context.Context, eventID, studentID string) (*models.Registration, error) {
	if eventID == "" || studentID == "" {
		return nil, fmt.Errorf("%w: event id and student id are required", apperrors.ErrValidationFailed)
	}
	return s.registrationRepo.MarkAttendance(ctx, eventID, studentID)
}

// SubmitFeedback appends a feedback record for an event. Prior submissions by
// the same student are allowed; attendance is not required.
func (s *registrationServiceImpl) SubmitFeedback(ctx context.Context, eventID, studentID, collegeID string, rating int, comment *string) (*models.Feedback, error) {
	if rating < models.MinRating || rating > models.MaxRating {
		return nil, fmt.Errorf("%w: got %d", apperrors.ErrInvalidRating, rating)
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	return s.feedbackRepo.Create(ctx, eventID, studentID, collegeID, rating, comment)
}

// GetEventRegistrations lists all registrations for an event.
func (s *registrationServiceImpl) GetEventRegistrations(ctx context.Context, eventID string) ([]models.Registration, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.registrationRepo.ListByEvent(ctx, eventID)
}

// GetStudentRegistrations lists all registrations made by a student.
func (s *registrationServiceImpl) GetStudentRegistrations(ctx context.Context, studentID string) ([]models.Registration, error) {
	return s.registrationRepo.ListByStudent(ctx, studentID)
}

// GetEventFeedback lists all feedback for an event.
func (s *registrationServiceImpl) GetEventFeedback(ctx context.Context, eventID string) ([]models.Feedback, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.feedbackRepo.ListByEvent(ctx, eventID)
}
