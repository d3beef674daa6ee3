package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/martinkovac/poolwatch/internal/config"
	"github.com/martinkovac/poolwatch/internal/handlers"
	"github.com/martinkovac/poolwatch/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	measurementHandler *handlers.MeasurementHandler,
	chartHandler *handlers.ChartHandler,
	exportHandler *handlers.ExportHandler,
	userHandler *handlers.UserHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Post("/auth/password", middleware.JWTProtected(cfg), authHandler.ChangePassword)

	// Measurements, charts and exports (JWT required)
	jwt := middleware.JWTProtected(cfg)
	api.Post("/measurements", jwt, measurementHandler.Create)
	api.Get("/measurements", jwt, measurementHandler.History)
	api.Get("/charts", jwt, chartHandler.Series)
	api.Get("/export/csv", jwt, exportHandler.ExportCSV)
	api.Get("/export/xlsx", jwt, exportHandler.ExportXLSX)

	// User administration (JWT + admin role)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db))
	admin.Get("/users", userHandler.ListUsers)
	admin.Post("/users", userHandler.CreateUser)
}
