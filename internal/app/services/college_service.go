package services

import (
	"context"
	"fmt"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/app/repositories"
	"github.com/campusevents/eventsphere/internal/pkg/apperrors"
)

// CollegeService defines the interface for college-related operations
type CollegeService interface {
	GetAllColleges(ctx context.Context) ([]models.College, error)
	GetCollegeByID(ctx context.Context, id string) (*models.College, error)
	GetCollegeUsers(ctx context.Context, collegeID string, role *models.Role) ([]models.User, error)
}

// collegeServiceImpl implements the CollegeService interface
type collegeServiceImpl struct {
	collegeRepo *repositories.CollegeRepository
	userRepo    *repositories.UserRepository
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo *repositories.CollegeRepository, userRepo *repositories.UserRepository) CollegeService {
	return &collegeServiceImpl{
		collegeRepo: collegeRepo,
		userRepo:    userRepo,
	}
}

// GetAllColleges returns every college.
func (s *collegeServiceImpl) GetAllColleges(ctx context.Context) ([]models.College, error) {
	colleges, err := s.collegeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return colleges, nil
}

// GetCollegeByID returns a single college.
func (s *collegeServiceImpl) GetCollegeByID(ctx context.Context, id string) (*models.College, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: college id is required", apperrors.ErrValidationFailed)
	}
	return s.collegeRepo.GetByID(ctx, id)
}

// GetCollegeUsers lists a college's users, optionally filtered by role. The
// college must exist; an empty member list is not an error.
func (s *collegeServiceImpl) GetCollegeUsers(ctx context.Context, collegeID string, role *models.Role) ([]models.User, error) {
	if _, err := s.collegeRepo.GetByID(ctx, collegeID); err != nil {
		return nil, err
	}

	if role != nil && !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, *role)
	}

	return s.userRepo.ListByCollege(ctx, collegeID, role)
}
