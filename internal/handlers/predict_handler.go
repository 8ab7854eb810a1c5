package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"placement-predictor/internal/models"
	"placement-predictor/internal/repositories"
	"placement-predictor/internal/services"
)

// guidelineThreshold is the percentage below which a guideline document is
// offered. Independent of the requirement verdict.
const guidelineThreshold = 75.0

type PredictHandler struct {
	predictor  services.PredictorService
	guidelines services.GuidelineService
	predRepo   repositories.PredictionRepository
	catalog    *services.RoleCatalog
}

func NewPredictHandler(
	predictor services.PredictorService,
	guidelines services.GuidelineService,
	predRepo repositories.PredictionRepository,
	catalog *services.RoleCatalog,
) *PredictHandler {
	return &PredictHandler{
		predictor:  predictor,
		guidelines: guidelines,
		predRepo:   predRepo,
		catalog:    catalog,
	}
}

// HandlePredict handles POST /predict
func (h *PredictHandler) HandlePredict(c *fiber.Ctx) error {
	var req models.PredictRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	status := strings.ToLower(strings.TrimSpace(req.InternshipStatus))
	if status == "" {
		status = "inactive"
	}

	jobRole := req.JobRole
	if jobRole == "" {
		jobRole = h.catalog.DefaultRole()
	}

	input := services.PredictionInput{
		CGPA:                coerceFloat(req.CGPA),
		CommunicationSkills: coerceInt(req.CommunicationSkills),
		Certifications:      coerceInt(req.Certifications),
		InternshipStatus:    status,
		JobRole:             jobRole,
		Projects:            coerceInt(req.Projects),
		Skills:              req.Skills,
	}

	outcome := h.predictor.Predict(input)

	record := &models.Prediction{
		ID:                  uuid.New(),
		UserEmail:           req.UserEmail,
		JobRole:             jobRole,
		CGPA:                input.CGPA,
		CommunicationSkills: input.CommunicationSkills,
		Certifications:      input.Certifications,
		InternshipStatus:    status,
		Projects:            input.Projects,
		Skills:              input.Skills,
		PredictedPercentage: outcome.Percentage,
		MeetsRequirements:   outcome.MeetsRequirements,
		CreatedAt:           time.Now(),
	}

	// The prediction itself never fails; a record-store error is logged
	// and the response still carries the result.
	if err := h.predRepo.Create(record); err != nil {
		log.Printf("⚠️  Failed to save prediction record: %v\n", err)
	}

	var guidelinesURL *string
	if outcome.Percentage < guidelineThreshold {
		if _, err := h.guidelines.Ensure(jobRole); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to prepare guidelines: %v", err),
			})
		}
		url := "/api/v1/guidelines/" + services.NormalizeRoleKey(jobRole)
		guidelinesURL = &url
	}

	return c.JSON(models.PredictResponse{
		ID:                  record.ID.String(),
		JobRole:             jobRole,
		PredictedPercentage: outcome.Percentage,
		MeetsRequirements:   outcome.MeetsRequirements,
		GuidelinesURL:       guidelinesURL,
	})
}

// HandleGetPrediction handles GET /predictions/:id
func (h *PredictHandler) HandleGetPrediction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid prediction ID format",
		})
	}

	prediction, err := h.predRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Prediction not found",
		})
	}

	return c.JSON(prediction)
}

// coerceFloat resolves non-numeric input to 0 instead of rejecting it.
func coerceFloat(v interface{}) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f
		}
	}
	return 0
}

func coerceInt(v interface{}) int {
	switch value := v.(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return i
		}
	}
	return 0
}
