package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/app/models/dto"
	"github.com/campusevents/eventsphere/internal/app/repositories"
	"github.com/campusevents/eventsphere/internal/app/services"
	"github.com/campusevents/eventsphere/internal/middleware"
)

// EventController handles event-related operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// CreateEvent handles event creation
// @Summary Create a new event
// @Description Creates an event under the caller's college. The event id is derived from the college acronym, the current year and a per-college sequence number.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=models.Event} "Event created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session := middleware.SessionFromContext(ctx)

	event, err := c.eventService.CreateEvent(ctx, models.EventDraft{
		CollegeID:   session.CollegeID,
		Title:       req.Title,
		Description: req.Description,
		Category:    models.EventCategory(req.Category),
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		Capacity:    req.Capacity,
		CreatedBy:   session.UserID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(event))
}

// ListEvents retrieves events with optional filters
// @Summary List events
// @Description Lists events, optionally filtered by college, category and status
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param collegeId query string false "Filter by college"
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=[]models.Event}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter values"
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	var query dto.EventListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event filters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	events, err := c.eventService.ListEvents(ctx, repositories.EventFilter{
		CollegeID: query.CollegeID,
		Category:  models.EventCategory(query.Category),
		Status:    models.EventStatus(query.Status),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(events))
}

// GetEventByID retrieves an event by ID
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.Event}
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	event, err := c.eventService.GetEventByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(event))
}
