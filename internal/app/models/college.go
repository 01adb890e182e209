package models

import "time"

// College is the tenant scope: every user, event, registration and feedback
// record belongs to exactly one college.
type College struct {
	ID           string    `json:"id" example:"college-1"`
	Name         string    `json:"name" example:"Delhi Technological University"`
	Location     string    `json:"location" example:"Delhi, India"`
	ContactEmail string    `json:"contactEmail" example:"admin@dtu.ac.in"`
	CreatedAt    time.Time `json:"createdAt" example:"2024-01-01T00:00:00Z"`
}
