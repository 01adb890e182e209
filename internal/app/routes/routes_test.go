package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusevents/eventsphere/internal/app/controllers"
	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/app/repositories"
	"github.com/campusevents/eventsphere/internal/app/services"
	"github.com/campusevents/eventsphere/internal/middleware"
	"github.com/campusevents/eventsphere/internal/pkg/auth"
	"github.com/campusevents/eventsphere/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testAPI struct {
	router *gin.Engine
	repos  *repositories.Repositories
}

// newTestAPI wires the full stack against a fresh in-memory store, seeded
// with one college, an admin and two students.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctx := context.Background()

	st := store.New()
	repos := repositories.NewRepositories(st)

	hash, err := auth.HashPassword("Campus123!")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if err := repos.CollegeRepository.Insert(ctx, models.College{ID: "college-3", Name: "Delhi Technological University"}); err != nil {
		t.Fatalf("insert college: %v", err)
	}
	users := []models.User{
		{ID: "admin-1", CollegeID: "college-3", Email: "admin@dtu.ac.in", PasswordHash: hash, Name: "Admin", Role: models.RoleAdmin},
		{ID: "student-1", CollegeID: "college-3", Email: "priya@dtu.ac.in", PasswordHash: hash, Name: "Priya", Role: models.RoleStudent},
		{ID: "student-2", CollegeID: "college-3", Email: "amit@dtu.ac.in", PasswordHash: hash, Name: "Amit", Role: models.RoleStudent},
	}
	for _, user := range users {
		if err := repos.UserRepository.Insert(ctx, user); err != nil {
			t.Fatalf("insert user: %v", err)
		}
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "eventsphere.test",
	})

	authService := services.NewAuthService(repos.UserRepository, repos.CollegeRepository, jwtService, zerolog.Nop())
	collegeService := services.NewCollegeService(repos.CollegeRepository, repos.UserRepository)
	eventService := services.NewEventService(repos.EventRepository)
	registrationService := services.NewRegistrationService(repos.RegistrationRepository, repos.FeedbackRepository, repos.EventRepository)
	reportService := services.NewReportService(st)

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authService, zerolog.Nop()),
		controllers.NewCollegeController(collegeService),
		controllers.NewEventController(eventService),
		controllers.NewRegistrationController(registrationService, eventService),
		controllers.NewReportController(reportService),
		middleware.NewAuthMiddleware(jwtService),
	)

	return &testAPI{router: router, repos: repos}
}

func (api *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	return rec
}

// login returns the session token for the given credentials.
func (api *testAPI) login(t *testing.T, email, password string) string {
	t.Helper()

	rec := api.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Data.Token == "" {
		t.Fatal("login response has no token")
	}
	return resp.Data.Token
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestHealthAndCollegesArePublic(t *testing.T) {
	api := newTestAPI(t)

	if rec := api.do(t, http.MethodGet, "/api/v1/health", "", nil); rec.Code != http.StatusOK {
		t.Errorf("health returned %d", rec.Code)
	}

	rec := api.do(t, http.MethodGet, "/api/v1/colleges", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("colleges returned %d", rec.Code)
	}
	var colleges []models.College
	decodeData(t, rec, &colleges)
	if len(colleges) != 1 {
		t.Errorf("colleges = %d, want 1", len(colleges))
	}
}

func TestLoginFailureReturns401(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "admin@dtu.ac.in", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("login returned %d, want 401", rec.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/events"},
		{http.MethodPost, "/api/v1/events"},
		{http.MethodGet, "/api/v1/students/me/registrations"},
		{http.MethodGet, "/api/v1/reports/consistency"},
	}
	for _, p := range paths {
		rec := api.do(t, p.method, p.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s returned %d, want 401", p.method, p.path, rec.Code)
		}
	}
}

func TestRoleEnforcement(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.login(t, "admin@dtu.ac.in", "Campus123!")
	studentToken := api.login(t, "priya@dtu.ac.in", "Campus123!")

	// Students cannot create events.
	rec := api.do(t, http.MethodPost, "/api/v1/events", studentToken, gin.H{
		"title": "Rogue Event", "category": "technical", "capacity": 10,
		"date": "2026-01-01", "time": "10:00", "venue": "Hall", "description": "x",
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("student create event returned %d, want 403", rec.Code)
	}

	// Admins cannot use student-only routes.
	rec = api.do(t, http.MethodGet, "/api/v1/students/me/registrations", adminToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("admin my-registrations returned %d, want 403", rec.Code)
	}

	// Students cannot read reports.
	rec = api.do(t, http.MethodGet, "/api/v1/reports/colleges/college-3", studentToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("student college report returned %d, want 403", rec.Code)
	}
}

func TestEventLifecycle(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.login(t, "admin@dtu.ac.in", "Campus123!")
	studentToken := api.login(t, "priya@dtu.ac.in", "Campus123!")
	secondToken := api.login(t, "amit@dtu.ac.in", "Campus123!")

	// Admin creates an event; the id derives from the college acronym.
	rec := api.do(t, http.MethodPost, "/api/v1/events", adminToken, gin.H{
		"title":       "AI Workshop",
		"description": "Intro to ML",
		"category":    "technical",
		"date":        "2026-03-01",
		"time":        "10:00",
		"venue":       "Auditorium",
		"capacity":    2,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create event returned %d: %s", rec.Code, rec.Body.String())
	}
	var event models.Event
	decodeData(t, rec, &event)
	wantID := fmt.Sprintf("DTU-%d-001", time.Now().Year())
	if event.ID != wantID {
		t.Errorf("event id = %q, want %q", event.ID, wantID)
	}

	eventPath := "/api/v1/events/" + event.ID

	// Both students register; the third seat does not exist.
	if rec := api.do(t, http.MethodPost, eventPath+"/registrations", studentToken, nil); rec.Code != http.StatusCreated {
		t.Fatalf("first registration returned %d: %s", rec.Code, rec.Body.String())
	}
	if rec := api.do(t, http.MethodPost, eventPath+"/registrations", studentToken, nil); rec.Code != http.StatusConflict {
		t.Errorf("duplicate registration returned %d, want 409", rec.Code)
	}
	if rec := api.do(t, http.MethodPost, eventPath+"/registrations", secondToken, nil); rec.Code != http.StatusCreated {
		t.Fatalf("second registration returned %d", rec.Code)
	}

	// Event is now full; a fresh registration attempt conflicts. Reuse the
	// duplicate check order: the same student gets the duplicate error first,
	// so check capacity via the event payload instead.
	rec = api.do(t, http.MethodGet, eventPath, studentToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get event returned %d", rec.Code)
	}
	decodeData(t, rec, &event)
	if event.RegisteredCount != 2 {
		t.Errorf("registered count = %d, want 2", event.RegisteredCount)
	}

	// Admin marks attendance for one student; a second mark conflicts.
	attendancePath := eventPath + "/registrations/student-1/attendance"
	if rec := api.do(t, http.MethodPatch, attendancePath, adminToken, nil); rec.Code != http.StatusOK {
		t.Fatalf("mark attendance returned %d: %s", rec.Code, rec.Body.String())
	}
	if rec := api.do(t, http.MethodPatch, attendancePath, adminToken, nil); rec.Code != http.StatusConflict {
		t.Errorf("repeat attendance returned %d, want 409", rec.Code)
	}

	// Student submits feedback; out-of-range ratings are rejected.
	if rec := api.do(t, http.MethodPost, eventPath+"/feedback", studentToken, gin.H{"rating": 5, "comment": "great"}); rec.Code != http.StatusCreated {
		t.Fatalf("feedback returned %d: %s", rec.Code, rec.Body.String())
	}
	if rec := api.do(t, http.MethodPost, eventPath+"/feedback", studentToken, gin.H{"rating": 6}); rec.Code != http.StatusBadRequest {
		t.Errorf("out-of-range rating returned %d, want 400", rec.Code)
	}

	// The student sees the event joined onto their registration listing.
	rec = api.do(t, http.MethodGet, "/api/v1/students/me/registrations", studentToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("my registrations returned %d", rec.Code)
	}
	var mine []struct {
		Registration models.Registration `json:"registration"`
		Event        *models.Event       `json:"event"`
	}
	decodeData(t, rec, &mine)
	if len(mine) != 1 {
		t.Fatalf("my registrations = %d, want 1", len(mine))
	}
	if mine[0].Event == nil || mine[0].Event.ID != event.ID {
		t.Errorf("registration not joined with its event")
	}

	// The admin report reflects the activity above.
	rec = api.do(t, http.MethodGet, "/api/v1/reports/events/"+event.ID, adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("event report returned %d", rec.Code)
	}
	var report models.EventReport
	decodeData(t, rec, &report)
	if report.TotalRegistrations != 2 {
		t.Errorf("report registrations = %d, want 2", report.TotalRegistrations)
	}
	if report.AttendanceCount != 1 {
		t.Errorf("report attendance = %d, want 1", report.AttendanceCount)
	}
	if report.AttendancePercentage != 50 {
		t.Errorf("report attendance pct = %d, want 50", report.AttendancePercentage)
	}
	if report.AverageFeedback != 5 {
		t.Errorf("report average feedback = %v, want 5", report.AverageFeedback)
	}

	// Counters stayed consistent with the records throughout.
	rec = api.do(t, http.MethodGet, "/api/v1/reports/consistency", adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("consistency returned %d", rec.Code)
	}
	var drifts []models.CounterDrift
	decodeData(t, rec, &drifts)
	if len(drifts) != 0 {
		t.Errorf("expected no counter drift, got %v", drifts)
	}
}

func TestUnknownEventReturns404(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, "priya@dtu.ac.in", "Campus123!")

	rec := api.do(t, http.MethodGet, "/api/v1/events/MISSING-2026-001", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get unknown event returned %d, want 404", rec.Code)
	}
}

func TestListEventsRejectsBadFilter(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, "priya@dtu.ac.in", "Campus123!")

	rec := api.do(t, http.MethodGet, "/api/v1/events?category=webinar", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad category filter returned %d, want 400", rec.Code)
	}
}
