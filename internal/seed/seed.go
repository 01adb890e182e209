// Package seed populates the record store once at startup with the sample
// colleges, accounts and event history used by the demo deployment.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/app/repositories"
	"github.com/campusevents/eventsphere/internal/pkg/auth"
)

// CreateDefaultData seeds the five collections. It runs exactly once, against
// a freshly-constructed store; everything after this point goes through the
// mutation operations.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, defaultPassword string, lgr zerolog.Logger) error {
	passwordHash, err := auth.HashPassword(defaultPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	seededAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	colleges := []models.College{
		{ID: "college-1", Name: "Indian Institute of Technology Delhi", Location: "New Delhi, India", ContactEmail: "admin@iitd.ac.in", CreatedAt: seededAt},
		{ID: "college-2", Name: "National Institute of Technology Trichy", Location: "Tiruchirappalli, Tamil Nadu", ContactEmail: "admin@nitt.edu", CreatedAt: seededAt},
		{ID: "college-3", Name: "Delhi Technological University", Location: "Delhi, India", ContactEmail: "admin@dtu.ac.in", CreatedAt: seededAt},
	}
	for _, college := range colleges {
		if err := repos.CollegeRepository.Insert(ctx, college); err != nil {
			return fmt.Errorf("failed to seed college %s: %w", college.ID, err)
		}
	}

	csDept := "Computer Science"
	mechDept := "Mechanical Engineering"
	year3 := 3
	studentID1 := "IIT2021001"
	studentID2 := "IIT2021002"

	users := []models.User{
		{
			ID: "admin-1", CollegeID: "college-1", Email: "admin@iitd.ac.in",
			PasswordHash: passwordHash, Name: "Dr. Rajesh Kumar", Role: models.RoleAdmin, CreatedAt: seededAt,
		},
		{
			ID: "student-1", CollegeID: "college-1", Email: "priya.sharma@iitd.ac.in",
			PasswordHash: passwordHash, Name: "Priya Sharma", Role: models.RoleStudent,
			StudentID: &studentID1, Department: &csDept, Year: &year3, CreatedAt: seededAt,
		},
		{
			ID: "student-2", CollegeID: "college-1", Email: "amit.patel@iitd.ac.in",
			PasswordHash: passwordHash, Name: "Amit Patel", Role: models.RoleStudent,
			StudentID: &studentID2, Department: &mechDept, Year: &year3, CreatedAt: seededAt,
		},
	}
	for _, user := range users {
		if err := repos.UserRepository.Insert(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.ID, err)
		}
	}

	events := []models.Event{
		{
			ID: "IITD-2024-001", CollegeID: "college-1",
			Title:       "AI & Machine Learning Workshop",
			Description: "Comprehensive workshop on AI/ML fundamentals and practical applications",
			Category:    models.CategoryTechnical, Date: "2024-12-15", Time: "10:00",
			Venue: "Computer Science Auditorium", Capacity: 200,
			RegisteredCount: 2, AttendanceCount: 2,
			Status: models.StatusCompleted, CreatedBy: "admin-1",
			CreatedAt: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "IITD-2024-002", CollegeID: "college-1",
			Title:       "Annual Cultural Festival - Rendezvous",
			Description: "Three-day cultural extravaganza with competitions, performances, and exhibitions",
			Category:    models.CategoryCultural, Date: "2024-12-20", Time: "16:00",
			Venue: "Main Campus Ground", Capacity: 500,
			RegisteredCount: 0, AttendanceCount: 0,
			Status: models.StatusUpcoming, CreatedBy: "admin-1",
			CreatedAt: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, event := range events {
		if err := repos.EventRepository.Insert(ctx, event); err != nil {
			return fmt.Errorf("failed to seed event %s: %w", event.ID, err)
		}
	}

	attended1 := time.Date(2024, 12, 15, 9, 45, 0, 0, time.UTC)
	attended2 := time.Date(2024, 12, 15, 9, 50, 0, 0, time.UTC)

	registrations := []models.Registration{
		{
			ID: "reg-1", EventID: "IITD-2024-001", StudentID: "student-1", CollegeID: "college-1",
			RegisteredAt: time.Date(2024, 11, 20, 10, 30, 0, 0, time.UTC),
			Attended:     true, AttendedAt: &attended1,
		},
		{
			ID: "reg-2", EventID: "IITD-2024-001", StudentID: "student-2", CollegeID: "college-1",
			RegisteredAt: time.Date(2024, 11, 21, 14, 20, 0, 0, time.UTC),
			Attended:     true, AttendedAt: &attended2,
		},
	}
	for _, registration := range registrations {
		if err := repos.RegistrationRepository.Insert(ctx, registration); err != nil {
			return fmt.Errorf("failed to seed registration %s: %w", registration.ID, err)
		}
	}

	comment1 := "Excellent workshop! Very informative and well-structured."
	comment2 := "Good content, but could use more hands-on exercises."

	feedback := []models.Feedback{
		{
			ID: "feedback-1", EventID: "IITD-2024-001", StudentID: "student-1", CollegeID: "college-1",
			Rating: 5, Comment: &comment1,
			SubmittedAt: time.Date(2024, 12, 15, 16, 0, 0, 0, time.UTC),
		},
		{
			ID: "feedback-2", EventID: "IITD-2024-001", StudentID: "student-2", CollegeID: "college-1",
			Rating: 4, Comment: &comment2,
			SubmittedAt: time.Date(2024, 12, 15, 16, 15, 0, 0, time.UTC),
		},
	}
	for _, entry := range feedback {
		if err := repos.FeedbackRepository.Insert(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed feedback %s: %w", entry.ID, err)
		}
	}

	lgr.Info().
		Int("colleges", len(colleges)).
		Int("users", len(users)).
		Int("events", len(events)).
		Msg("Default data seeded")

	return nil
}
