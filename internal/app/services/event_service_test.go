package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/app/repositories"
	"github.com/campusevents/eventsphere/internal/pkg/apperrors"
)

func newEventService(t *testing.T) (EventService, *repositories.Repositories) {
	t.Helper()
	_, repos := newTestEnv(t)
	return NewEventService(repos.EventRepository), repos
}

func validDraft() models.EventDraft {
	return models.EventDraft{
		CollegeID: "college-1",
		Title:     "Tech Talk",
		Category:  models.CategoryTechnical,
		Date:      "2026-02-01",
		Time:      "14:00",
		Venue:     "Hall A",
		Capacity:  50,
		CreatedBy: "admin-1",
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc, _ := newEventService(t)

	tests := []struct {
		name   string
		mutate func(*models.EventDraft)
	}{
		{"empty title", func(d *models.EventDraft) { d.Title = "" }},
		{"whitespace title", func(d *models.EventDraft) { d.Title = "   " }},
		{"unknown category", func(d *models.EventDraft) { d.Category = "webinar" }},
		{"zero capacity", func(d *models.EventDraft) { d.Capacity = 0 }},
		{"negative capacity", func(d *models.EventDraft) { d.Capacity = -5 }},
		{"missing college", func(d *models.EventDraft) { d.CollegeID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)
			_, err := svc.CreateEvent(context.Background(), draft)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}
		})
	}
}

func TestCreateEvent(t *testing.T) {
	svc, repos := newEventService(t)
	ctx := context.Background()

	err := repos.CollegeRepository.Insert(ctx, models.College{ID: "college-1", Name: "Test University"})
	if err != nil {
		t.Fatalf("insert college: %v", err)
	}

	event, err := svc.CreateEvent(ctx, validDraft())
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}
	if event.Status != models.StatusUpcoming {
		t.Errorf("status = %q, want upcoming", event.Status)
	}

	fetched, err := svc.GetEventByID(ctx, event.ID)
	if err != nil {
		t.Fatalf("get event failed: %v", err)
	}
	if fetched.Title != "Tech Talk" {
		t.Errorf("title = %q", fetched.Title)
	}
}

func TestListEventsFilterValidation(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.ListEvents(context.Background(), repositories.EventFilter{Category: "webinar"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed for bad category, got %v", err)
	}

	_, err = svc.ListEvents(context.Background(), repositories.EventFilter{Status: "archived"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed for bad status, got %v", err)
	}
}

func TestGetEventByIDRequiresID(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.GetEventByID(context.Background(), "")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}
