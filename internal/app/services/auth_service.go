package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/app/repositories"
	"github.com/campusevents/eventsphere/internal/pkg/apperrors"
	"github.com/campusevents/eventsphere/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// LoginResult carries the issued token and the authenticated session scope.
type LoginResult struct {
	Token     string
	ExpiresIn int
	User      *models.User
	College   *models.College
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo    *repositories.UserRepository
	collegeRepo *repositories.CollegeRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo *repositories.UserRepository,
	collegeRepo *repositories.CollegeRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		collegeRepo: collegeRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login verifies the credentials and issues a session token carrying the
// (userID, role, collegeID) triple. The role in the token is what the rest
// of the application trusts; the user record's role field is never consulted
// again for the lifetime of the session.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.logger.Warn().Str("email", email).Msg("Login failed: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	college, err := s.collegeRepo.GetByID(ctx, user.CollegeID)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &LoginResult{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      user,
		College:   college,
	}, nil
}
