package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/campuslife/activity-system/internal/api/handler"
	"github.com/campuslife/activity-system/internal/api/middleware"
	"github.com/campuslife/activity-system/internal/core/domain"
	"github.com/campuslife/activity-system/internal/core/service"
	"github.com/campuslife/activity-system/internal/infrastructure/db/memory"
	"github.com/campuslife/activity-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("activity"))

	// --- Dependencies ---
	userRepo := memory.NewUserRepository()
	activityRepo := memory.NewActivityRepository()

	codec := service.NewTokenCodec(jwtSecret, tokenTTL)
	authService := service.NewAuthService(userRepo, codec, log)
	activityService := service.NewActivityService(activityRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	activityHandler := handler.NewActivityHandler(activityService)

	authRequired := middleware.Auth(codec)
	adminOnly := middleware.RequireRole(string(domain.RoleAdmin))
	studentOnly := middleware.RequireRole(string(domain.RoleStudent))

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Activity routes ---
	e.GET("/activities", activityHandler.List, authRequired)
	e.POST("/activities", activityHandler.Create, authRequired, adminOnly)
	e.PUT("/activities/:id", activityHandler.Update, authRequired, adminOnly)
	e.POST("/activities/:id/join", activityHandler.Join, authRequired, studentOnly)

	// --- Observability (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
