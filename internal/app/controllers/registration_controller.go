package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusevents/eventsphere/internal/app/models/dto"
	"github.com/campusevents/eventsphere/internal/app/services"
	"github.com/campusevents/eventsphere/internal/middleware"
)

// RegistrationController handles registration, attendance and feedback
// operations
type RegistrationController struct {
	registrationService services.RegistrationService
	eventService        services.EventService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService, eventService services.EventService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		eventService:        eventService,
	}
}

// Register handles a student registering for an event
// @Summary Register for an event
// @Description Registers the calling student for the event. Duplicate registrations and full events are conflicts.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 201 {object} dto.APIResponse{data=models.Registration} "Registered successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - student role required"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Already registered or event full"
// @Router /events/{id}/registrations [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	session := middleware.SessionFromContext(ctx)

	registration, err := c.registrationService.Register(ctx, ctx.Param("id"), session.UserID, session.CollegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(registration))
}

// GetEventRegistrations lists an event's registrations
// @Summary List event registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Registration}
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/registrations [get]
func (c *RegistrationController) GetEventRegistrations(ctx *gin.Context) {
	registrations, err := c.registrationService.GetEventRegistrations(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registrations))
}

// MarkAttendance records a student's attendance at an event
// @Summary Mark attendance
// @Description Flags the student's registration as attended. Repeated calls are conflicts; the attendance counter is incremented exactly once.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Registration} "Attendance recorded"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 409 {object} dto.ErrorResponse "Attendance already recorded"
// @Router /events/{id}/registrations/{studentId}/attendance [patch]
func (c *RegistrationController) MarkAttendance(ctx *gin.Context) {
	registration, err := c.registrationService.MarkAttendance(ctx, ctx.Param("id"), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registration))
}

// GetMyRegistrations lists the calling student's registrations with their
// events
// @Summary List my registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentRegistrationResponse}
// @Router /students/me/registrations [get]
func (c *RegistrationController) GetMyRegistrations(ctx *gin.Context) {
	session := middleware.SessionFromContext(ctx)

	registrations, err := c.registrationService.GetStudentRegistrations(ctx, session.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.StudentRegistrationResponse, 0, len(registrations))
	for _, registration := range registrations {
		item := dto.StudentRegistrationResponse{Registration: registration}
		// Missing events are skipped rather than failing the whole listing.
		if event, err := c.eventService.GetEventByID(ctx, registration.EventID); err == nil {
			item.Event = event
		}
		responses = append(responses, item)
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// SubmitFeedback records a student's feedback for an event
// @Summary Submit feedback
// @Description Appends a feedback record with a 1-5 rating. A student may submit more than once.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} dto.APIResponse{data=models.Feedback} "Feedback recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/feedback [post]
func (c *RegistrationController) SubmitFeedback(ctx *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session := middleware.SessionFromContext(ctx)

	feedback, err := c.registrationService.SubmitFeedback(ctx, ctx.Param("id"), session.UserID, session.CollegeID, req.Rating, req.Comment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(feedback))
}

// GetEventFeedback lists an event's feedback
// @Summary List event feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Feedback}
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/feedback [get]
func (c *RegistrationController) GetEventFeedback(ctx *gin.Context) {
	feedback, err := c.registrationService.GetEventFeedback(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(feedback))
}
