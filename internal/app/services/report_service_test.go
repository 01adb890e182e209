package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/app/repositories"
	"github.com/campusevents/eventsphere/internal/pkg/apperrors"
	"github.com/campusevents/eventsphere/internal/store"
)

func newTestEnv(t *testing.T) (*store.Store, *repositories.Repositories) {
	t.Helper()
	st := store.New()
	return st, repositories.NewRepositories(st)
}

func TestRoundPercentage(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		total int
		want  int
	}{
		{"zero total", 3, 0, 0},
		{"zero part", 0, 5, 0},
		{"exact", 3, 4, 75},
		{"all attended", 4, 4, 100},
		{"rounds down", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"half rounds up", 1, 8, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundPercentage(tt.part, tt.total); got != tt.want {
				t.Errorf("roundPercentage(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
			}
		})
	}
}

func TestRoundRating(t *testing.T) {
	tests := []struct {
		name  string
		sum   int
		count int
		want  float64
	}{
		{"zero count", 9, 0, 0},
		{"whole number", 8, 2, 4},
		{"one decimal", 7, 2, 3.5},
		{"five and four average to 4.5", 9, 2, 4.5},
		{"rounds to one decimal", 13, 3, 4.3},
		{"rounds up", 11, 3, 3.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundRating(tt.sum, tt.count); got != tt.want {
				t.Errorf("roundRating(%d, %d) = %v, want %v", tt.sum, tt.count, got, tt.want)
			}
		})
	}
}

// seedReportScenario builds a college with one completed event holding four
// registrations (three attended) and three feedback entries, plus one upcoming
// event with no activity.
func seedReportScenario(t *testing.T, repos *repositories.Repositories) {
	t.Helper()
	ctx := context.Background()

	if err := repos.CollegeRepository.Insert(ctx, models.College{ID: "college-1", Name: "Test University"}); err != nil {
		t.Fatalf("insert college: %v", err)
	}

	users := []models.User{
		{ID: "admin-1", CollegeID: "college-1", Role: models.RoleAdmin},
		{ID: "student-1", CollegeID: "college-1", Role: models.RoleStudent},
		{ID: "student-2", CollegeID: "college-1", Role: models.RoleStudent},
		{ID: "student-3", CollegeID: "college-1", Role: models.RoleStudent},
		{ID: "student-4", CollegeID: "college-1", Role: models.RoleStudent},
	}
	for _, user := range users {
		if err := repos.UserRepository.Insert(ctx, user); err != nil {
			t.Fatalf("insert user: %v", err)
		}
	}

	events := []models.Event{
		{ID: "evt-1", CollegeID: "college-1", Title: "Workshop", Capacity: 10, Status: models.StatusCompleted},
		{ID: "evt-2", CollegeID: "college-1", Title: "Festival", Capacity: 100, Status: models.StatusUpcoming},
	}
	for _, event := range events {
		if err := repos.EventRepository.Insert(ctx, event); err != nil {
			t.Fatalf("insert event: %v", err)
		}
	}

	for _, student := range []string{"student-1", "student-2", "student-3", "student-4"} {
		if _, err := repos.RegistrationRepository.Register(ctx, "evt-1", student, "college-1"); err != nil {
			t.Fatalf("register %s: %v", student, err)
		}
	}
	for _, student := range []string{"student-1", "student-2", "student-3"} {
		if _, err := repos.RegistrationRepository.MarkAttendance(ctx, "evt-1", student); err != nil {
			t.Fatalf("mark attendance %s: %v", student, err)
		}
	}

	for i, rating := range []int{5, 4, 4} {
		student := []string{"student-1", "student-2", "student-3"}[i]
		if _, err := repos.FeedbackRepository.Create(ctx, "evt-1", student, "college-1", rating, nil); err != nil {
			t.Fatalf("feedback %s: %v", student, err)
		}
	}
}

func TestGetEventReport(t *testing.T) {
	st, repos := newTestEnv(t)
	seedReportScenario(t, repos)
	svc := NewReportService(st)

	report, err := svc.GetEventReport(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("get event report failed: %v", err)
	}

	if report.EventTitle != "Workshop" {
		t.Errorf("event title = %q", report.EventTitle)
	}
	if report.TotalRegistrations != 4 {
		t.Errorf("total registrations = %d, want 4", report.TotalRegistrations)
	}
	if report.AttendanceCount != 3 {
		t.Errorf("attendance count = %d, want 3", report.AttendanceCount)
	}
	if report.AttendancePercentage != 75 {
		t.Errorf("attendance percentage = %d, want 75", report.AttendancePercentage)
	}
	if report.AverageFeedback != 4.3 {
		t.Errorf("average feedback = %v, want 4.3", report.AverageFeedback)
	}
	if report.FeedbackCount != 3 {
		t.Errorf("feedback count = %d, want 3", report.FeedbackCount)
	}
}

func TestGetEventReportEmptyEvent(t *testing.T) {
	st, repos := newTestEnv(t)
	seedReportScenario(t, repos)
	svc := NewReportService(st)

	report, err := svc.GetEventReport(context.Background(), "evt-2")
	if err != nil {
		t.Fatalf("get event report failed: %v", err)
	}

	// Zero registrations and zero feedback must yield zeroes, not NaN or an
	// error.
	if report.TotalRegistrations != 0 || report.AttendanceCount != 0 {
		t.Errorf("counts = (%d, %d), want (0, 0)", report.TotalRegistrations, report.AttendanceCount)
	}
	if report.AttendancePercentage != 0 {
		t.Errorf("attendance percentage = %d, want 0", report.AttendancePercentage)
	}
	if report.AverageFeedback != 0 {
		t.Errorf("average feedback = %v, want 0", report.AverageFeedback)
	}
}

func TestGetEventReportNotFound(t *testing.T) {
	st, _ := newTestEnv(t)
	svc := NewReportService(st)

	_, err := svc.GetEventReport(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestGetCollegeReport(t *testing.T) {
	st, repos := newTestEnv(t)
	seedReportScenario(t, repos)
	svc := NewReportService(st)

	report, err := svc.GetCollegeReport(context.Background(), "college-1")
	if err != nil {
		t.Fatalf("get college report failed: %v", err)
	}

	if report.CollegeName != "Test University" {
		t.Errorf("college name = %q", report.CollegeName)
	}
	if report.TotalEvents != 2 {
		t.Errorf("total events = %d, want 2", report.TotalEvents)
	}
	if report.TotalRegistrations != 4 {
		t.Errorf("total registrations = %d, want 4", report.TotalRegistrations)
	}
	if report.AverageAttendance != 75 {
		t.Errorf("average attendance = %d, want 75", report.AverageAttendance)
	}
	if report.AverageFeedback != 4.3 {
		t.Errorf("average feedback = %v, want 4.3", report.AverageFeedback)
	}
}

func TestGetCollegeReportNotFound(t *testing.T) {
	st, _ := newTestEnv(t)
	svc := NewReportService(st)

	_, err := svc.GetCollegeReport(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrCollegeNotFound) {
		t.Fatalf("expected ErrCollegeNotFound, got %v", err)
	}
}

func TestGetCollegeDashboard(t *testing.T) {
	st, repos := newTestEnv(t)
	seedReportScenario(t, repos)
	svc := NewReportService(st)

	dashboard, err := svc.GetCollegeDashboard(context.Background(), "college-1")
	if err != nil {
		t.Fatalf("get dashboard failed: %v", err)
	}

	if dashboard.TotalStudents != 4 {
		t.Errorf("total students = %d, want 4; admins must not count", dashboard.TotalStudents)
	}
	if dashboard.TotalEvents != 2 {
		t.Errorf("total events = %d, want 2", dashboard.TotalEvents)
	}
	if dashboard.UpcomingEvents != 1 {
		t.Errorf("upcoming events = %d, want 1", dashboard.UpcomingEvents)
	}
	if dashboard.CompletedEvents != 1 {
		t.Errorf("completed events = %d, want 1", dashboard.CompletedEvents)
	}
	if dashboard.TotalRegistrations != 4 {
		t.Errorf("total registrations = %d, want 4", dashboard.TotalRegistrations)
	}
	if dashboard.AverageFeedback != 4.3 {
		t.Errorf("average feedback = %v, want 4.3", dashboard.AverageFeedback)
	}
}

func TestReconcileCountersClean(t *testing.T) {
	st, repos := newTestEnv(t)
	seedReportScenario(t, repos)
	svc := NewReportService(st)

	drifts, err := svc.ReconcileCounters(context.Background())
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if len(drifts) != 0 {
		t.Fatalf("expected no drift after counter-maintaining mutations, got %v", drifts)
	}
}

func TestReconcileCountersDetectsDrift(t *testing.T) {
	st, repos := newTestEnv(t)
	ctx := context.Background()
	svc := NewReportService(st)

	// An event whose counters disagree with its registration records.
	err := repos.EventRepository.Insert(ctx, models.Event{
		ID: "evt-drift", CollegeID: "college-1", Capacity: 10,
		RegisteredCount: 5, AttendanceCount: 2,
	})
	if err != nil {
		t.Fatalf("insert event: %v", err)
	}
	err = repos.RegistrationRepository.Insert(ctx, models.Registration{
		ID: "reg-1", EventID: "evt-drift", StudentID: "student-1", Attended: true,
	})
	if err != nil {
		t.Fatalf("insert registration: %v", err)
	}

	drifts, err := svc.ReconcileCounters(ctx)
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if len(drifts) != 1 {
		t.Fatalf("expected 1 drift, got %d", len(drifts))
	}

	drift := drifts[0]
	if drift.EventID != "evt-drift" {
		t.Errorf("drift event id = %q", drift.EventID)
	}
	if drift.RegisteredCount != 5 || drift.ActualRegistrations != 1 {
		t.Errorf("registration drift = (%d, %d), want (5, 1)", drift.RegisteredCount, drift.ActualRegistrations)
	}
	if drift.AttendanceCount != 2 || drift.ActualAttendance != 1 {
		t.Errorf("attendance drift = (%d, %d), want (2, 1)", drift.AttendanceCount, drift.ActualAttendance)
	}
}
