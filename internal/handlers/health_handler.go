package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trananhtuan/recruitment-backend/internal/config"
	"github.com/trananhtuan/recruitment-backend/internal/database"
	"github.com/trananhtuan/recruitment-backend/internal/dto"
)

type HealthHandler struct {
	cfg       *config.Config
	startedAt time.Time
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg, startedAt: time.Now()}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:      "OK",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.startedAt).Round(time.Second).String(),
		Environment: h.cfg.Environment,
		DB:          dbStatus,
	})
}

// TestDB handles GET /api/test-db, a liveness probe for the primary store.
func (h *HealthHandler) TestDB(c *fiber.Ctx) error {
	if err := database.Ping(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":   false,
			"message":   "Database connection failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Database connection successful",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// EnvInfo handles GET /api/env-info: reports which settings are present
// without leaking their values.
func (h *HealthHandler) EnvInfo(c *fiber.Ctx) error {
	configured := func(v string) string {
		if v != "" {
			return "Configured"
		}
		return "Not configured"
	}

	return c.JSON(fiber.Map{
		"environment": h.cfg.Environment,
		"port":        h.cfg.Port,
		"dbHost":      configured(h.cfg.DBHost),
		"dbUser":      configured(h.cfg.DBUser),
		"dbName":      h.cfg.DBName,
		"googleSheets": fiber.Map{
			"credentials":   configured(h.cfg.GoogleServiceAccountKey),
			"spreadsheetId": configured(h.cfg.GoogleSheetsID),
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
