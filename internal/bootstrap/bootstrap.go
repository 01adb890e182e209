// Package bootstrap wires the application together: configuration, logging,
// the record store, repositories, services, controllers and routes.
package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campusevents/eventsphere/internal/app/controllers"
	appRepos "github.com/campusevents/eventsphere/internal/app/repositories"
	appRoutes "github.com/campusevents/eventsphere/internal/app/routes"
	appServices "github.com/campusevents/eventsphere/internal/app/services"
	"github.com/campusevents/eventsphere/internal/config"
	appMiddleware "github.com/campusevents/eventsphere/internal/middleware"
	pkgAuth "github.com/campusevents/eventsphere/internal/pkg/auth"
	"github.com/campusevents/eventsphere/internal/pkg/logger"
	"github.com/campusevents/eventsphere/internal/seed"
	"github.com/campusevents/eventsphere/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	CollegeService         appServices.CollegeService
	EventService           appServices.EventService
	RegistrationService    appServices.RegistrationService
	ReportService          appServices.ReportService
	AuthController         *appControllers.AuthController
	CollegeController      *appControllers.CollegeController
	EventController        *appControllers.EventController
	RegistrationController *appControllers.RegistrationController
	ReportController       *appControllers.ReportController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore creates the in-memory record store and seeds the default data.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, error) {
	st := store.New()

	repos := appRepos.NewRepositories(st)
	if err := seed.CreateDefaultData(context.Background(), repos, cfg.Seed.DefaultPassword, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data")
		return nil, err
	}

	return st, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, st *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(st)

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		// LoadConfig validates the format; this is a fallback only.
		accessTokenExp = 12 * time.Hour
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.CollegeRepository,
		deps.JWTService,
		lgr,
	)
	deps.CollegeService = appServices.NewCollegeService(deps.Repos.CollegeRepository, deps.Repos.UserRepository)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository)
	deps.RegistrationService = appServices.NewRegistrationService(
		deps.Repos.RegistrationRepository,
		deps.Repos.FeedbackRepository,
		deps.Repos.EventRepository,
	)
	deps.ReportService = appServices.NewReportService(st)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService, deps.EventService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CollegeController,
		deps.EventController,
		deps.RegistrationController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
