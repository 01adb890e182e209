package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/pkg/apperrors"
	"github.com/campusevents/eventsphere/internal/store"
)

// EventFilter narrows an event listing. Zero-value fields are ignored.
type EventFilter struct {
	CollegeID string
	Category  models.EventCategory
	Status    models.EventStatus
}

// EventRepository provides access to the event collection.
type EventRepository struct {
	store *store.Store
}

// NewEventRepository creates a new event repository.
func NewEventRepository(st *store.Store) *EventRepository {
	return &EventRepository{store: st}
}

// GetByID returns the event with the given id, or ErrEventNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var found *models.Event
	r.store.View(func(data *store.Data) {
		for i := range data.Events {
			if data.Events[i].ID == id {
				event := data.Events[i]
				found = &event
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrEventNotFound
	}
	return found, nil
}

// List returns all events matching the filter, in insertion order.
func (r *EventRepository) List(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	events := []models.Event{}
	r.store.View(func(data *store.Data) {
		for i := range data.Events {
			event := data.Events[i]
			if filter.CollegeID != "" && event.CollegeID != filter.CollegeID {
				continue
			}
			if filter.Category != "" && event.Category != filter.Category {
				continue
			}
			if filter.Status != "" && event.Status != filter.Status {
				continue
			}
			events = append(events, event)
		}
	})
	return events, nil
}

// Create appends a new event for the draft's college. The event id is derived
// inside the same update that appends the record, so the per-college sequence
// number cannot collide under concurrent creates.
func (r *EventRepository) Create(ctx context.Context, draft models.EventDraft) (*models.Event, error) {
	var (
		created *models.Event
		err     error
	)
	r.store.Update(func(data *store.Data) {
		var college *models.College
		for i := range data.Colleges {
			if data.Colleges[i].ID == draft.CollegeID {
				college = &data.Colleges[i]
				break
			}
		}
		if college == nil {
			err = apperrors.ErrCollegeNotFound
			return
		}

		sequence := 1
		for i := range data.Events {
			if data.Events[i].CollegeID == draft.CollegeID {
				sequence++
			}
		}

		event := models.Event{
			ID:              generateEventID(college.Name, time.Now().Year(), sequence),
			CollegeID:       draft.CollegeID,
			Title:           draft.Title,
			Description:     draft.Description,
			Category:        draft.Category,
			Date:            draft.Date,
			Time:            draft.Time,
			Venue:           draft.Venue,
			Capacity:        draft.Capacity,
			RegisteredCount: 0,
			AttendanceCount: 0,
			Status:          models.StatusUpcoming,
			CreatedBy:       draft.CreatedBy,
			CreatedAt:       time.Now(),
		}
		data.Events = append(data.Events, event)
		created = &event
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Insert appends a fully-formed event record. Used by the seeder.
func (r *EventRepository) Insert(ctx context.Context, event models.Event) error {
	r.store.Update(func(data *store.Data) {
		data.Events = append(data.Events, event)
	})
	return nil
}

// generateEventID derives a deterministic event id: the college name's
// word-initial acronym, the calendar year, and a zero-padded per-college
// sequence number, e.g. "DTU-2025-001".
func generateEventID(collegeName string, year, sequence int) string {
	var acronym strings.Builder
	for _, word := range strings.Fields(collegeName) {
		acronym.WriteRune([]rune(word)[0])
	}
	code := strings.ToUpper(acronym.String())
	if code == "" {
		code = "UNK"
	}
	return fmt.Sprintf("%s-%d-%03d", code, year, sequence)
}
