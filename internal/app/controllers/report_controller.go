package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusevents/eventsphere/internal/app/models/dto"
	"github.com/campusevents/eventsphere/internal/app/services"
	"github.com/campusevents/eventsphere/internal/middleware"
)

// ReportController handles the reporting operations
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetEventReport retrieves aggregate statistics for one event
// @Summary Get event report
// @Description Computes registrations, attendance percentage and average feedback for an event, fresh on every call
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.EventReport}
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /reports/events/{id} [get]
func (c *ReportController) GetEventReport(ctx *gin.Context) {
	report, err := c.reportService.GetEventReport(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}

// GetCollegeReport retrieves aggregate statistics for one college
// @Summary Get college report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "College ID"
// @Success 200 {object} dto.APIResponse{data=models.CollegeReport}
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /reports/colleges/{id} [get]
func (c *ReportController) GetCollegeReport(ctx *gin.Context) {
	report, err := c.reportService.GetCollegeReport(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}

// GetCollegeDashboard retrieves the dashboard numbers for one college
// @Summary Get college dashboard
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "College ID"
// @Success 200 {object} dto.APIResponse{data=models.CollegeDashboard}
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /reports/colleges/{id}/dashboard [get]
func (c *ReportController) GetCollegeDashboard(ctx *gin.Context) {
	dashboard, err := c.reportService.GetCollegeDashboard(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// ReconcileCounters audits the denormalized event counters
// @Summary Audit event counters
// @Description Compares every event's denormalized counters against the registration records and lists any drift
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CounterDrift}
// @Router /reports/consistency [get]
func (c *ReportController) ReconcileCounters(ctx *gin.Context) {
	drifts, err := c.reportService.ReconcileCounters(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(drifts))
}
