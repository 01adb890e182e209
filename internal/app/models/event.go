package models

import "time"

// EventCategory classifies an event.
type EventCategory string

const (
	CategoryAcademic  EventCategory = "academic"
	CategoryCultural  EventCategory = "cultural"
	CategorySports    EventCategory = "sports"
	CategoryTechnical EventCategory = "technical"
	CategoryOther     EventCategory = "other"
)

// IsValid reports whether the category is one of the known values.
func (c EventCategory) IsValid() bool {
	switch c {
	case CategoryAcademic, CategoryCultural, CategorySports, CategoryTechnical, CategoryOther:
		return true
	}
	return false
}

// EventStatus describes where an event is in its lifecycle.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values.
func (s EventStatus) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Event represents a college event students can register for.
//
// RegisteredCount and AttendanceCount are denormalized counters maintained by
// the registration mutations; the reporting layer can audit them against the
// registration records (see ReconcileCounters).
type Event struct {
	ID              string        `json:"id" example:"DTU-2025-001"`
	CollegeID       string        `json:"collegeId" example:"college-3"`
	Title           string        `json:"title" example:"AI & Machine Learning Workshop"`
	Description     string        `json:"description"`
	Category        EventCategory `json:"category" example:"technical"`
	Date            string        `json:"date" example:"2025-12-15"`
	Time            string        `json:"time" example:"10:00"`
	Venue           string        `json:"venue" example:"Computer Science Auditorium"`
	Capacity        int           `json:"capacity" example:"200"`
	RegisteredCount int           `json:"registeredCount" example:"156"`
	AttendanceCount int           `json:"attendanceCount" example:"142"`
	Status          EventStatus   `json:"status" example:"upcoming"`
	CreatedBy       string        `json:"createdBy" example:"admin-1"`
	CreatedAt       time.Time     `json:"createdAt" example:"2025-11-01T00:00:00Z"`
}

// EventDraft carries the caller-supplied fields of a new event. The id,
// counters, status and creation time are filled in on create.
type EventDraft struct {
	CollegeID   string
	Title       string
	Description string
	Category    EventCategory
	Date        string
	Time        string
	Venue       string
	Capacity    int
	CreatedBy   string
}

// Remaining returns the number of available seats.
func (e *Event) Remaining() int {
	return e.Capacity - e.RegisteredCount
}

// IsFull returns true when no seats remain.
func (e *Event) IsFull() bool {
	return e.RegisteredCount >= e.Capacity
}
