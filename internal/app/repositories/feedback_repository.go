package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/store"
)

// FeedbackRepository provides access to the feedback collection.
type FeedbackRepository struct {
	store *store.Store
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(st *store.Store) *FeedbackRepository {
	return &FeedbackRepository{store: st}
}

// ListByEvent returns all feedback submitted for an event.
func (r *FeedbackRepository) ListByEvent(ctx context.Context, eventID string) ([]models.Feedback, error) {
	feedback := []models.Feedback{}
	r.store.View(func(data *store.Data) {
		for i := range data.Feedback {
			if data.Feedback[i].EventID == eventID {
				feedback = append(feedback, data.Feedback[i])
			}
		}
	})
	return feedback, nil
}

// Create appends a new feedback record. Duplicates per (event, student) are
// allowed; a student may rate the same event more than once.
func (r *FeedbackRepository) Create(ctx context.Context, eventID, studentID, collegeID string, rating int, comment *string) (*models.Feedback, error) {
	feedback := models.Feedback{
		ID:          uuid.New().String(),
		EventID:     eventID,
		StudentID:   studentID,
		CollegeID:   collegeID,
		Rating:      rating,
		Comment:     comment,
		SubmittedAt: time.Now(),
	}
	r.store.Update(func(data *store.Data) {
		data.Feedback = append(data.Feedback, feedback)
	})
	return &feedback, nil
}

// Insert appends a feedback record. Used by the seeder.
func (r *FeedbackRepository) Insert(ctx context.Context, feedback models.Feedback) error {
	r.store.Update(func(data *store.Data) {
		data.Feedback = append(data.Feedback, feedback)
	})
	return nil
}
