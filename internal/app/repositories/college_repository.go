package repositories

import (
	"context"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/pkg/apperrors"
	"github.com/campusevents/eventsphere/internal/store"
)

// CollegeRepository provides read access to the college collection.
type CollegeRepository struct {
	store *store.Store
}

// NewCollegeRepository creates a new college repository.
func NewCollegeRepository(st *store.Store) *CollegeRepository {
	return &CollegeRepository{store: st}
}

// GetAll returns all colleges in insertion order.
func (r *CollegeRepository) GetAll(ctx context.Context) ([]models.College, error) {
	var colleges []models.College
	r.store.View(func(data *store.Data) {
		colleges = append(colleges, data.Colleges...)
	})
	if colleges == nil {
		colleges = []models.College{}
	}
	return colleges, nil
}

// GetByID returns the college with the given id, or ErrCollegeNotFound.
func (r *CollegeRepository) GetByID(ctx context.Context, id string) (*models.College, error) {
	var found *models.College
	r.store.View(func(data *store.Data) {
		for i := range data.Colleges {
			if data.Colleges[i].ID == id {
				college := data.Colleges[i]
				found = &college
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrCollegeNotFound
	}
	return found, nil
}

// Insert appends a college record. Used by the seeder.
func (r *CollegeRepository) Insert(ctx context.Context, college models.College) error {
	r.store.Update(func(data *store.Data) {
		data.Colleges = append(data.Colleges, college)
	})
	return nil
}
