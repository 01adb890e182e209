// Package store holds every record collection for the lifetime of the
// process. It is the in-memory stand-in for a database: repositories run
// linear scans over its collections inside View/Update closures, which give
// each mutation an atomic read-modify-write section and each report a
// consistent snapshot under concurrent access.
package store

import (
	"sync"

	"github.com/campusevents/eventsphere/internal/app/models"
)

// Data holds the five entity collections as ordered sequences. Records are
// appended in insertion order and never removed.
type Data struct {
	Colleges      []models.College
	Users         []models.User
	Events        []models.Event
	Registrations []models.Registration
	Feedback      []models.Feedback
}

// Store is the process-wide record store. It is constructed once at startup
// and injected into every repository; there is no hidden global instance.
type Store struct {
	mu   sync.RWMutex
	data Data
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// View runs fn with shared read access to the store's data. The pointer
// passed to fn must not be retained or written through.
func (s *Store) View(fn func(data *Data)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// Update runs fn with exclusive write access to the store's data. Everything
// fn does happens inside one critical section, so a duplicate check, an
// append and a counter increment performed together cannot interleave with
// other writers.
func (s *Store) Update(fn func(data *Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}
