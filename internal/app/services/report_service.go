package services

import (
	"context"
	"math"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/pkg/apperrors"
	"github.com/campusevents/eventsphere/internal/store"
)

// ReportService defines the interface for the reporting operations. Every
// report is recomputed from the records on each call; nothing is cached.
type ReportService interface {
	GetEventReport(ctx context.Context, eventID string) (*models.EventReport, error)
	GetCollegeReport(ctx context.Context, collegeID string) (*models.CollegeReport, error)
	GetCollegeDashboard(ctx context.Context, collegeID string) (*models.CollegeDashboard, error)
	ReconcileCounters(ctx context.Context) ([]models.CounterDrift, error)
}

// reportServiceImpl implements the ReportService interface.
//
// Reports scan the record store inside a single View closure so each report
// reflects one point-in-time snapshot even under concurrent writers.
type reportServiceImpl struct {
	store *store.Store
}

// NewReportService creates a new report service instance
func NewReportService(st *store.Store) ReportService {
	return &reportServiceImpl{store: st}
}

// GetEventReport computes attendance and feedback aggregates for one event
// from fresh scans of the registration and feedback records.
func (s *reportServiceImpl) GetEventReport(ctx context.Context, eventID string) (*models.EventReport, error) {
	var (
		report *models.EventReport
		err    error
	)
	s.store.View(func(data *store.Data) {
		var event *models.Event
		for i := range data.Events {
			if data.Events[i].ID == eventID {
				event = &data.Events[i]
				break
			}
		}
		if event == nil {
			err = apperrors.ErrEventNotFound
			return
		}

		totalRegistrations := 0
		attendanceCount := 0
		for i := range data.Registrations {
			if data.Registrations[i].EventID != eventID {
				continue
			}
			totalRegistrations++
			if data.Registrations[i].Attended {
				attendanceCount++
			}
		}

		ratingSum := 0
		feedbackCount := 0
		for i := range data.Feedback {
			if data.Feedback[i].EventID == eventID {
				ratingSum += data.Feedback[i].Rating
				feedbackCount++
			}
		}

		report = &models.EventReport{
			EventID:              event.ID,
			EventTitle:           event.Title,
			TotalRegistrations:   totalRegistrations,
			AttendanceCount:      attendanceCount,
			AttendancePercentage: roundPercentage(attendanceCount, totalRegistrations),
			AverageFeedback:      roundRating(ratingSum, feedbackCount),
			FeedbackCount:        feedbackCount,
		}
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// GetCollegeReport aggregates across all of a college's events. Registration
// and attendance totals come from the denormalized event counters; feedback
// is scanned fresh.
func (s *reportServiceImpl) GetCollegeReport(ctx context.Context, collegeID string) (*models.CollegeReport, error) {
	var (
		report *models.CollegeReport
		err    error
	)
	s.store.View(func(data *store.Data) {
		var college *models.College
		for i := range data.Colleges {
			if data.Colleges[i].ID == collegeID {
				college = &data.Colleges[i]
				break
			}
		}
		if college == nil {
			err = apperrors.ErrCollegeNotFound
			return
		}

		totalEvents := 0
		totalRegistrations := 0
		totalAttendance := 0
		collegeEvents := map[string]bool{}
		for i := range data.Events {
			if data.Events[i].CollegeID != collegeID {
				continue
			}
			totalEvents++
			totalRegistrations += data.Events[i].RegisteredCount
			totalAttendance += data.Events[i].AttendanceCount
			collegeEvents[data.Events[i].ID] = true
		}

		ratingSum := 0
		feedbackCount := 0
		for i := range data.Feedback {
			if collegeEvents[data.Feedback[i].EventID] {
				ratingSum += data.Feedback[i].Rating
				feedbackCount++
			}
		}

		report = &models.CollegeReport{
			CollegeID:          college.ID,
			CollegeName:        college.Name,
			TotalEvents:        totalEvents,
			TotalRegistrations: totalRegistrations,
			AverageAttendance:  roundPercentage(totalAttendance, totalRegistrations),
			AverageFeedback:    roundRating(ratingSum, feedbackCount),
		}
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// GetCollegeDashboard computes the headline numbers an admin landing page
// shows for one college.
func (s *reportServiceImpl) GetCollegeDashboard(ctx context.Context, collegeID string) (*models.CollegeDashboard, error) {
	var (
		dashboard *models.CollegeDashboard
		err       error
	)
	s.store.View(func(data *store.Data) {
		found := false
		for i := range data.Colleges {
			if data.Colleges[i].ID == collegeID {
				found = true
				break
			}
		}
		if !found {
			err = apperrors.ErrCollegeNotFound
			return
		}

		dashboard = &models.CollegeDashboard{CollegeID: collegeID}

		for i := range data.Users {
			if data.Users[i].CollegeID == collegeID && data.Users[i].Role == models.RoleStudent {
				dashboard.TotalStudents++
			}
		}

		collegeEvents := map[string]bool{}
		for i := range data.Events {
			event := &data.Events[i]
			if event.CollegeID != collegeID {
				continue
			}
			dashboard.TotalEvents++
			dashboard.TotalRegistrations += event.RegisteredCount
			collegeEvents[event.ID] = true
			switch event.Status {
			case models.StatusUpcoming:
				dashboard.UpcomingEvents++
			case models.StatusCompleted:
				dashboard.CompletedEvents++
			}
		}

		ratingSum := 0
		feedbackCount := 0
		for i := range data.Feedback {
			if collegeEvents[data.Feedback[i].EventID] {
				ratingSum += data.Feedback[i].Rating
				feedbackCount++
			}
		}
		dashboard.AverageFeedback = roundRating(ratingSum, feedbackCount)
	})
	if err != nil {
		return nil, err
	}
	return dashboard, nil
}

// ReconcileCounters compares every event's denormalized counters against a
// fresh scan of the registration records and returns the events that drifted.
// An empty result means the increment-on-write bookkeeping is intact.
func (s *reportServiceImpl) ReconcileCounters(ctx context.Context) ([]models.CounterDrift, error) {
	drifts := []models.CounterDrift{}
	s.store.View(func(data *store.Data) {
		type tally struct {
			registrations int
			attendance    int
		}
		tallies := map[string]tally{}
		for i := range data.Registrations {
			t := tallies[data.Registrations[i].EventID]
			t.registrations++
			if data.Registrations[i].Attended {
				t.attendance++
			}
			tallies[data.Registrations[i].EventID] = t
		}

		for i := range data.Events {
			event := &data.Events[i]
			t := tallies[event.ID]
			if event.RegisteredCount != t.registrations || event.AttendanceCount != t.attendance {
				drifts = append(drifts, models.CounterDrift{
					EventID:             event.ID,
					RegisteredCount:     event.RegisteredCount,
					ActualRegistrations: t.registrations,
					AttendanceCount:     event.AttendanceCount,
					ActualAttendance:    t.attendance,
				})
			}
		}
	})
	return drifts, nil
}

// roundPercentage computes round-half-up(part/total*100), 0 when total is 0.
func roundPercentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// roundRating computes the mean rating rounded to one decimal, 0 when there
// are no ratings.
func roundRating(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}
