package repositories

import (
	"context"
	"strings"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/pkg/apperrors"
	"github.com/campusevents/eventsphere/internal/store"
)

// UserRepository provides read access to the user collection.
type UserRepository struct {
	store *store.Store
}

// NewUserRepository creates a new user repository.
func NewUserRepository(st *store.Store) *UserRepository {
	return &UserRepository{store: st}
}

// GetByID returns the user with the given id, or ErrUserNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var found *models.User
	r.store.View(func(data *store.Data) {
		for i := range data.Users {
			if data.Users[i].ID == id {
				user := data.Users[i]
				found = &user
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return found, nil
}

// GetByEmail returns the user with the given email (case-insensitive), or
// ErrUserNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var found *models.User
	r.store.View(func(data *store.Data) {
		for i := range data.Users {
			if strings.ToLower(data.Users[i].Email) == email {
				user := data.Users[i]
				found = &user
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return found, nil
}

// ListByCollege returns all users of a college, optionally filtered by role.
// A miss yields an empty slice, never an error.
func (r *UserRepository) ListByCollege(ctx context.Context, collegeID string, role *models.Role) ([]models.User, error) {
	users := []models.User{}
	r.store.View(func(data *store.Data) {
		for i := range data.Users {
			user := data.Users[i]
			if user.CollegeID != collegeID {
				continue
			}
			if role != nil && user.Role != *role {
				continue
			}
			users = append(users, user)
		}
	})
	return users, nil
}

// Insert appends a user record. Used by the seeder.
func (r *UserRepository) Insert(ctx context.Context, user models.User) error {
	r.store.Update(func(data *store.Data) {
		data.Users = append(data.Users, user)
	})
	return nil
}
