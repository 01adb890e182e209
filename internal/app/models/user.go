package models

import "time"

// Role defines a user's role within their college.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// User defines an account belonging to a college. Role is fixed at seed time;
// a session carries it inside the signed token, so it cannot be flipped at
// runtime.
type User struct {
	ID           string    `json:"id" example:"student-1"`
	CollegeID    string    `json:"collegeId" example:"college-1"`
	Email        string    `json:"email" example:"priya.sharma@iitd.ac.in"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name" example:"Priya Sharma"`
	Role         Role      `json:"role" example:"student"`
	StudentID    *string   `json:"studentId,omitempty" example:"IIT2021001"`
	Department   *string   `json:"department,omitempty" example:"Computer Science"`
	Year         *int      `json:"year,omitempty" example:"3"`
	CreatedAt    time.Time `json:"createdAt" example:"2024-01-01T00:00:00Z"`
}
