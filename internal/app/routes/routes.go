package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusevents/eventsphere/internal/app/controllers"
	"github.com/campusevents/eventsphere/internal/app/models"
	"github.com/campusevents/eventsphere/internal/app/models/dto"
	"github.com/campusevents/eventsphere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	collegeController *controllers.CollegeController,
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// College directory is public so the login screen can offer a picker.
	v1.GET("/colleges", collegeController.GetAllColleges)
	v1.GET("/colleges/:id", collegeController.GetCollegeByID)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/colleges/:id/users", collegeController.GetCollegeUsers)

		events := authenticated.Group("/events")
		{
			events.GET("", eventController.ListEvents)
			events.GET("/:id", eventController.GetEventByID)
			events.GET("/:id/registrations", registrationController.GetEventRegistrations)
			events.GET("/:id/feedback", registrationController.GetEventFeedback)

			// Admin-only event management
			eventsAdmin := events.Group("")
			eventsAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				eventsAdmin.POST("", eventController.CreateEvent)
				eventsAdmin.PATCH("/:id/registrations/:studentId/attendance", registrationController.MarkAttendance)
			}

			// Student-only actions
			eventsStudent := events.Group("")
			eventsStudent.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				eventsStudent.POST("/:id/registrations", registrationController.Register)
				eventsStudent.POST("/:id/feedback", registrationController.SubmitFeedback)
			}
		}

		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			students.GET("/me/registrations", registrationController.GetMyRegistrations)
		}

		reports := authenticated.Group("/reports")
		reports.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			reports.GET("/events/:id", reportController.GetEventReport)
			reports.GET("/colleges/:id", reportController.GetCollegeReport)
			reports.GET("/colleges/:id/dashboard", reportController.GetCollegeDashboard)
			reports.GET("/consistency", reportController.ReconcileCounters)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
