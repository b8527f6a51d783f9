package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trananhtuan/recruitment-backend/internal/dto"
	"github.com/trananhtuan/recruitment-backend/internal/sheets"
)

// resyncRunner is the slice of SyncService the handler needs.
type resyncRunner interface {
	Run(ctx context.Context) (int, error)
}

// sheetsReplica is the slice of sheets.Service the handler needs.
type sheetsReplica interface {
	State() sheets.State
	Status() sheets.Status
	AddRegistration(ctx context.Context, row sheets.Row) error
}

type SyncHandler struct {
	syncService   resyncRunner
	sheetsService sheetsReplica
}

func NewSyncHandler(syncService resyncRunner, sheetsService sheetsReplica) *SyncHandler {
	return &SyncHandler{syncService: syncService, sheetsService: sheetsService}
}

// SyncToGoogleSheets handles POST /api/sync-google-sheets: a full resync of
// the sheet from the database, on demand.
func (h *SyncHandler) SyncToGoogleSheets(c *fiber.Ctx) error {
	count, err := h.syncService.Run(c.Context())
	if err != nil {
		if errors.Is(err, sheets.ErrNotReady) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Success: false, Message: "Google Sheets service not ready",
			})
		}
		slog.Error("google sheets sync failed", "action", "sync_sheets", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Đồng bộ Google Sheets thất bại",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Đã đồng bộ %d đăng ký lên Google Sheets", count),
	})
}

// Status handles GET /api/google-sheets-status.
func (h *SyncHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":      true,
		"googleSheets": h.sheetsService.Status(),
	})
}

// Test handles POST /api/test-google-sheets: appends a fixed test row so
// operators can verify sheet access without submitting the public form.
func (h *SyncHandler) Test(c *fiber.Ctx) error {
	if h.sheetsService.State() != sheets.StateReady {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"message": "Google Sheets service not ready",
			"config":  h.sheetsService.Status(),
		})
	}

	row := sheets.Row{
		ID:             fmt.Sprintf("test-%d", time.Now().Unix()),
		RegisteredAt:   time.Now().Format("02/01/2006 15:04:05"),
		FullName:       "Test User",
		Phone:          "0123456789",
		CCCD:           "123456789012",
		Gender:         "Nam",
		BirthDate:      "01/01/1990",
		Address:        "Test Address",
		Factory:        "Vân Trung",
		CCCDIssueDate:  "01/01/2020",
		CCCDExpiryDate: "01/01/2030",
	}

	// The endpoint reports the append outcome in the body; the request
	// itself succeeded, so the status stays 200 even when the sheet write
	// fails.
	if err := h.sheetsService.AddRegistration(c.Context(), row); err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Failed to add test data",
			"error":   err.Error(),
			"config":  h.sheetsService.Status(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Test data added successfully",
		"config":  h.sheetsService.Status(),
	})
}
