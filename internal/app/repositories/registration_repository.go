package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/pkg/apperrors"
	"github.com/campusevents/eventsphere/internal/store"
)

// RegistrationRepository provides access to the registration collection and
// maintains the denormalized counters on events.
type RegistrationRepository struct {
	store *store.Store
}

// NewRegistrationRepository creates a new registration repository.
func NewRegistrationRepository(st *store.Store) *RegistrationRepository {
	return &RegistrationRepository{store: st}
}

// ListByEvent returns all registrations for an event.
func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]models.Registration, error) {
	registrations := []models.Registration{}
	r.store.View(func(data *store.Data) {
		for i := range data.Registrations {
			if data.Registrations[i].EventID == eventID {
				registrations = append(registrations, data.Registrations[i])
			}
		}
	})
	return registrations, nil
}

// ListByStudent returns all registrations made by a student.
func (r *RegistrationRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Registration, error) {
	registrations := []models.Registration{}
	r.store.View(func(data *store.Data) {
		for i := range data.Registrations {
			if data.Registrations[i].StudentID == studentID {
				registrations = append(registrations, data.Registrations[i])
			}
		}
	})
	return registrations, nil
}

// Register records a student's registration for an event. The duplicate
// check, capacity check, append and counter increment all happen inside one
// store update.
//
// Returns ErrEventNotFound, ErrDuplicateRegistration or ErrEventFull.
func (r *RegistrationRepository) Register(ctx context.Context, eventID, studentID, collegeID string) (*models.Registration, error) {
	var (
		created *models.Registration
		err     error
	)
	r.store.Update(func(data *store.Data) {
		var event *models.Event
		for i := range data.Events {
			if data.Events[i].ID == eventID {
				event = &data.Events[i]
				break
			}
		}
		if event == nil {
			err = apperrors.ErrEventNotFound
			return
		}

		for i := range data.Registrations {
			if data.Registrations[i].EventID == eventID && data.Registrations[i].StudentID == studentID {
				err = apperrors.ErrDuplicateRegistration
				return
			}
		}

		if event.IsFull() {
			err = apperrors.ErrEventFull
			return
		}

		registration := models.Registration{
			ID:           uuid.New().String(),
			EventID:      eventID,
			StudentID:    studentID,
			CollegeID:    collegeID,
			RegisteredAt: time.Now(),
			Attended:     false,
		}
		data.Registrations = append(data.Registrations, registration)
		event.RegisteredCount++
		created = &registration
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// MarkAttendance flags a registration as attended and increments the event's
// attendance counter. Marking twice is a conflict; the counter is only ever
// incremented once per registration.
//
// Returns ErrRegistrationNotFound or ErrAlreadyAttended.
func (r *RegistrationRepository) MarkAttendance(ctx context.Context, eventID, studentID string) (*models.Registration, error) {
	var (
		updated *models.Registration
		err     error
	)
	r.store.Update(func(data *store.Data) {
		var registration *models.Registration
		for i := range data.Registrations {
			if data.Registrations[i].EventID == eventID && data.Registrations[i].StudentID == studentID {
				registration = &data.Registrations[i]
				break
			}
		}
		if registration == nil {
			err = apperrors.ErrRegistrationNotFound
			return
		}
		if registration.Attended {
			err = apperrors.ErrAlreadyAttended
			return
		}

		now := time.Now()
		registration.Attended = true
		registration.AttendedAt = &now

		for i := range data.Events {
			if data.Events[i].ID == eventID {
				data.Events[i].AttendanceCount++
				break
			}
		}

		result := *registration
		updated = &result
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Insert appends a registration record without touching counters. Used by
// the seeder, whose sample events already carry their counts.
func (r *RegistrationRepository) Insert(ctx context.Context, registration models.Registration) error {
	r.store.Update(func(data *store.Data) {
		data.Registrations = append(data.Registrations, registration)
	})
	return nil
}
