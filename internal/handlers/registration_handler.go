package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trananhtuan/recruitment-backend/internal/dto"
	"github.com/trananhtuan/recruitment-backend/internal/replication"
	"github.com/trananhtuan/recruitment-backend/internal/services"
	"github.com/trananhtuan/recruitment-backend/internal/validation"
)

const (
	msgCreateSuccess = "Đăng ký thành công! Chúng tôi sẽ liên hệ với bạn sớm nhất."
	msgStoreError    = "Có lỗi xảy ra. Vui lòng thử lại sau."
	msgListError     = "Có lỗi xảy ra khi lấy dữ liệu"
	msgStatsError    = "Có lỗi xảy ra khi lấy thống kê"
)

type RegistrationHandler struct {
	service    *services.RegistrationService
	replicator *replication.Replicator
}

func NewRegistrationHandler(service *services.RegistrationService, replicator *replication.Replicator) *RegistrationHandler {
	return &RegistrationHandler{service: service, replicator: replicator}
}

// Create handles POST /api/registrations. The response is decided entirely
// by validation and the primary insert; replication to the sheet is enqueued
// after the fact and its outcome is invisible to the applicant.
func (h *RegistrationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: validation.MsgMissingFields,
		})
	}

	reg, err := h.service.Create(c.Context(), &req, c.IP(), c.Get("User-Agent"))
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: verr.Message,
			})
		}
		if services.IsConflict(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		}
		slog.Error("registration create failed", "action", "create_registration", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: msgStoreError,
		})
	}

	h.replicator.Enqueue(*reg)

	return c.JSON(dto.CreateRegistrationResponse{
		Success:        true,
		Message:        msgCreateSuccess,
		RegistrationID: reg.ID,
		Data: dto.RegistrationCreatedData{
			FullName:         reg.FullName,
			Phone:            reg.Phone,
			Factory:          reg.Factory,
			RegistrationDate: reg.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
}

// List handles GET /api/registrations (admin panel), newest first.
func (h *RegistrationHandler) List(c *fiber.Ctx) error {
	regs, err := h.service.ListAll(c.Context())
	if err != nil {
		slog.Error("registration list failed", "action", "list_registrations", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: msgListError,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(regs),
		"data":    regs,
	})
}

// Statistics handles GET /api/statistics.
func (h *RegistrationHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.service.Statistics(c.Context())
	if err != nil {
		slog.Error("statistics failed", "action", "statistics", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: msgStatsError,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
