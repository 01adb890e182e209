// Package repositories implements the query and mutation operations over the
// record store. Every query is a linear scan with an equality predicate;
// every mutation runs inside a single store update so its invariant checks
// and counter increments are atomic.
package repositories

import (
	"github.com/campusevents/eventsphere/internal/store"
)

// Repositories bundles all repository instances sharing one record store.
type Repositories struct {
	CollegeRepository      *CollegeRepository
	UserRepository         *UserRepository
	EventRepository        *EventRepository
	RegistrationRepository *RegistrationRepository
	FeedbackRepository     *FeedbackRepository
}

// NewRepositories creates all repositories backed by the given store.
func NewRepositories(st *store.Store) *Repositories {
	return &Repositories{
		CollegeRepository:      NewCollegeRepository(st),
		UserRepository:         NewUserRepository(st),
		EventRepository:        NewEventRepository(st),
		RegistrationRepository: NewRegistrationRepository(st),
		FeedbackRepository:     NewFeedbackRepository(st),
	}
}
