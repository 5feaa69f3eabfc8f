package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/communitycare/report-system/internal/api/handler"
	"github.com/communitycare/report-system/internal/api/middleware"
	"github.com/communitycare/report-system/internal/core/domain"
	"github.com/communitycare/report-system/internal/core/service"
	mongodb "github.com/communitycare/report-system/internal/infrastructure/db/mongo"
	redisdb "github.com/communitycare/report-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("communitycare"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	notifRepo := mongodb.NewNotificationRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	unreadCache := redisdb.NewUnreadCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	reportService := service.NewReportService(reportRepo, auditRepo, unreadCache, log)
	userService := service.NewUserService(userRepo, auditRepo, log)
	notifService := service.NewNotificationService(notifRepo, unreadCache, log)

	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(reportService)
	userHandler := handler.NewUserHandler(userService)
	notifHandler := handler.NewNotificationHandler(notifService)

	auth := middleware.Auth(jwtSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Report routes ---
	e.POST("/reports", reportHandler.Create, auth)
	e.GET("/reports/my-reports", reportHandler.ListMine, auth)
	e.GET("/reports", reportHandler.ListAll, auth, adminOnly)
	e.PUT("/reports/:id/status", reportHandler.UpdateStatus, auth, adminOnly)
	e.DELETE("/reports/:id", reportHandler.Delete, auth, adminOnly)

	// --- User management routes (admin only) ---
	e.GET("/users", userHandler.List, auth, adminOnly)
	e.PUT("/users/:id/role", userHandler.UpdateRole, auth, adminOnly)
	e.DELETE("/users/:id", userHandler.Delete, auth, adminOnly)

	// --- Notification routes ---
	e.GET("/notifications", notifHandler.List, auth)
	e.GET("/notifications/unread", notifHandler.UnreadCount, auth)
	e.PUT("/notifications/read", notifHandler.MarkRead, auth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)         // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
