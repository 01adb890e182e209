package dto

// CreateEventRequest represents event creation data. The event id, counters,
// status and creation time are assigned server-side.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required" example:"AI & Machine Learning Workshop"`
	Description string `json:"description" example:"Hands-on workshop on AI/ML fundamentals"`
	Category    string `json:"category" binding:"required,oneof=academic cultural sports technical other" example:"technical"`
	Date        string `json:"date" binding:"required" example:"2025-12-15"`
	Time        string `json:"time" binding:"required" example:"10:00"`
	Venue       string `json:"venue" binding:"required" example:"Computer Science Auditorium"`
	Capacity    int    `json:"capacity" binding:"required,min=1" example:"200"`
}

// EventListQuery holds the optional filters of an event listing.
type EventListQuery struct {
	CollegeID string `form:"collegeId"`
	Category  string `form:"category" binding:"omitempty,oneof=academic cultural sports technical other"`
	Status    string `form:"status" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
}
