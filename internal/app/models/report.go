package models

// EventReport holds aggregate statistics for one event, computed fresh from
// the registration and feedback records on every request.
type EventReport struct {
	EventID              string  `json:"eventId" example:"DTU-2025-001"`
	EventTitle           string  `json:"eventTitle" example:"AI & Machine Learning Workshop"`
	TotalRegistrations   int     `json:"totalRegistrations" example:"156"`
	AttendanceCount      int     `json:"attendanceCount" example:"142"`
	AttendancePercentage int     `json:"attendancePercentage" example:"91"`
	AverageFeedback      float64 `json:"averageFeedback" example:"4.5"`
	FeedbackCount        int     `json:"feedbackCount" example:"37"`
}

// CollegeReport holds aggregate statistics across all of a college's events.
// Registration and attendance totals come from the denormalized event
// counters, not a fresh scan; ReconcileCounters audits the difference.
type CollegeReport struct {
	CollegeID          string  `json:"collegeId" example:"college-3"`
	CollegeName        string  `json:"collegeName" example:"Delhi Technological University"`
	TotalEvents        int     `json:"totalEvents" example:"12"`
	TotalRegistrations int     `json:"totalRegistrations" example:"950"`
	AverageAttendance  int     `json:"averageAttendance" example:"78"`
	AverageFeedback    float64 `json:"averageFeedback" example:"4.1"`
}

// CollegeDashboard holds the headline numbers for a college's admin
// dashboard.
type CollegeDashboard struct {
	CollegeID          string  `json:"collegeId"`
	TotalStudents      int     `json:"totalStudents"`
	TotalEvents        int     `json:"totalEvents"`
	UpcomingEvents     int     `json:"upcomingEvents"`
	CompletedEvents    int     `json:"completedEvents"`
	TotalRegistrations int     `json:"totalRegistrations"`
	AverageFeedback    float64 `json:"averageFeedback"`
}

// CounterDrift records one event whose denormalized counters disagree with
// the registration records.
type CounterDrift struct {
	EventID             string `json:"eventId"`
	RegisteredCount     int    `json:"registeredCount"`
	ActualRegistrations int    `json:"actualRegistrations"`
	AttendanceCount     int    `json:"attendanceCount"`
	ActualAttendance    int    `json:"actualAttendance"`
}
