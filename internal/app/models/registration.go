package models

import "time"

// Registration is a student's claim on a seat at an event. At most one
// registration exists per (EventID, StudentID) pair; attendance is tracked
// separately from the act of registering.
type Registration struct {
	ID           string     `json:"id"`
	EventID      string     `json:"eventId" example:"DTU-2025-001"`
	StudentID    string     `json:"studentId" example:"student-1"`
	CollegeID    string     `json:"collegeId" example:"college-3"`
	RegisteredAt time.Time  `json:"registeredAt"`
	Attended     bool       `json:"attended"`
	AttendedAt   *time.Time `json:"attendedAt,omitempty"`
}
