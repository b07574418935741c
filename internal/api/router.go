package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kreker0001/TimeJobs/internal/api/handler"
	"github.com/kreker0001/TimeJobs/internal/api/middleware"
	"github.com/kreker0001/TimeJobs/internal/core/domain"
	"github.com/kreker0001/TimeJobs/internal/core/service"
	"github.com/kreker0001/TimeJobs/internal/infrastructure/db/postgres"
	redisdb "github.com/kreker0001/TimeJobs/internal/infrastructure/db/redis"
	"github.com/kreker0001/TimeJobs/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("timejobs"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	revoker := redisdb.NewTokenRevoker(rdb)

	authService := service.NewAuthService(userRepo, revoker, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo)
	jobService := service.NewJobService(jobRepo, userRepo, applicationRepo, log)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(userService)
	vacancyHandler := handler.NewVacancyHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	manageHandler := handler.NewManageHandler(jobService)
	statsHandler := handler.NewStatsHandler(jobService)

	auth := middleware.Auth(cfg.JWTSecret, revoker)
	viewer := middleware.OptionalAuth(cfg.JWTSecret)

	// --- Public surface ---
	e.GET("/", statsHandler.Index)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/vacancies", vacancyHandler.List)
	e.GET("/vacancies/:id", vacancyHandler.Get, viewer)

	// --- Authenticated surface ---
	e.POST("/auth/logout", authHandler.Logout, auth)
	e.POST("/vacancies", vacancyHandler.Create, auth, middleware.RBAC(domain.RoleEmployer))
	e.POST("/vacancies/:id/apply", applicationHandler.Apply, auth, middleware.RBAC(domain.RoleWorker))
	e.GET("/my-applications", applicationHandler.ListOwn, auth, middleware.RBAC(domain.RoleWorker))
	e.GET("/manage", manageHandler.List, auth, middleware.RBAC(domain.RoleEmployer, domain.RoleModerator))
	e.POST("/manage/jobs/:id/status/:action", manageHandler.ChangeStatus, auth)
	e.GET("/profile", profileHandler.Get, auth)
	e.PUT("/profile", profileHandler.Update, auth)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
