package models

import "time"

// Feedback is a student's rating of an event. No uniqueness is enforced: a
// student may submit feedback for the same event more than once.
type Feedback struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId" example:"DTU-2025-001"`
	StudentID   string    `json:"studentId" example:"student-1"`
	CollegeID   string    `json:"collegeId" example:"college-3"`
	Rating      int       `json:"rating" example:"5"`
	Comment     *string   `json:"comment,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// MinRating and MaxRating bound the accepted feedback rating.
const (
	MinRating = 1
	MaxRating = 5
)
