package controllers

import (
	"github.com/gofiber/fiber/v2"

	"campus-connect/dto"
	"campus-connect/internal/services"
)

// CreateNoticeHandler godoc
// @Summary Publish a notice
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param notice body dto.NoticeRequestDTO true "Notice"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /notices [post]
func CreateNoticeHandler(svc *services.NoticeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.NoticeRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := body.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		notice, err := svc.CreateNotice(c.Context(), body)
		if err != nil {
			return respondServiceError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
			Message: "notice created successfully",
			ID:      notice.ID.Hex(),
		})
	}
}

// ListNoticesHandler godoc
// @Summary List all notices
// @Tags notices
// @Produce json
// @Success 200 {array} models.Notice
// @Router /notices [get]
func ListNoticesHandler(svc *services.NoticeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notices, err := svc.ListNotices(c.Context())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(notices)
	}
}
