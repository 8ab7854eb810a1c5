package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"placement-predictor/internal/models"
	"placement-predictor/internal/services"
)

type GuidelinesHandler struct {
	guidelines services.GuidelineService
	mailer     services.MailerService
}

func NewGuidelinesHandler(
	guidelines services.GuidelineService,
	mailer services.MailerService,
) *GuidelinesHandler {
	return &GuidelinesHandler{
		guidelines: guidelines,
		mailer:     mailer,
	}
}

// HandleDownload handles GET /guidelines/:role
func (h *GuidelinesHandler) HandleDownload(c *fiber.Ctx) error {
	role := services.RoleFromKey(c.Params("role"))

	path, err := h.guidelines.Ensure(role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to prepare guidelines: %v", err),
		})
	}

	return c.Download(path, h.guidelines.DocumentName(role))
}

// HandleEmail handles POST /guidelines/email
func (h *GuidelinesHandler) HandleEmail(c *fiber.Ctx) error {
	var req models.EmailGuidelinesRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobRole == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing job role or email",
		})
	}

	path, err := h.guidelines.Ensure(req.JobRole)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to prepare guidelines: %v", err),
		})
	}

	// Email delivery is the one step that can visibly fail; the transport
	// error reason is surfaced to the caller.
	err = h.mailer.SendDocument(
		req.Email,
		fmt.Sprintf("Placement Guidelines for %s", req.JobRole),
		"Find attached guidelines.",
		path,
		h.guidelines.DocumentName(req.JobRole),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to send email: %v", err),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Guidelines sent to your email.",
	})
}
