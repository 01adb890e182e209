package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/app/models/dto"
	"github.com/campusevents/eventsphere/internal/app/services"
	"github.com/campusevents/eventsphere/internal/middleware"
)

// CollegeController handles college-related operations
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// GetAllColleges retrieves all colleges
// @Summary List colleges
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.College}
// @Router /colleges [get]
func (c *CollegeController) GetAllColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetAllColleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(colleges))
}

// GetCollegeByID retrieves a college by ID
// @Summary Get college by ID
// @Tags colleges
// @Produce json
// @Param id path string true "College ID"
// @Success 200 {object} dto.APIResponse{data=models.College}
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id} [get]
func (c *CollegeController) GetCollegeByID(ctx *gin.Context) {
	college, err := c.collegeService.GetCollegeByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(college))
}

// GetCollegeUsers retrieves a college's users
// @Summary List college users
// @Description Lists a college's users, optionally filtered by role
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param id path string true "College ID"
// @Param role query string false "Filter by role (admin or student)"
// @Success 200 {object} dto.APIResponse{data=[]models.User}
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id}/users [get]
func (c *CollegeController) GetCollegeUsers(ctx *gin.Context) {
	var role *models.Role
	if roleParam := ctx.Query("role"); roleParam != "" {
		r := models.Role(roleParam)
		role = &r
	}

	users, err := c.collegeService.GetCollegeUsers(ctx, ctx.Param("id"), role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(users))
}
