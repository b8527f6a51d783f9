package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/trananhtuan/recruitment-backend/internal/handlers"
)

func Setup(
	app *fiber.App,
	registrationHandler *handlers.RegistrationHandler,
	healthHandler *handlers.HealthHandler,
	syncHandler *handlers.SyncHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health and diagnostics
	api.Get("/health", healthHandler.Check)
	api.Get("/test-db", healthHandler.TestDB)
	api.Get("/env-info", healthHandler.EnvInfo)

	// Registration intake: 10 req/min per IP (stricter, public form)
	api.Post("/registrations", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), registrationHandler.Create)

	// Admin panel
	api.Get("/registrations", registrationHandler.List)
	api.Get("/statistics", registrationHandler.Statistics)

	// Google Sheets admin endpoints
	api.Post("/sync-google-sheets", syncHandler.SyncToGoogleSheets)
	api.Get("/google-sheets-status", syncHandler.Status)
	api.Post("/test-google-sheets", syncHandler.Test)
}
