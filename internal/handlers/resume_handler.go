package handlers

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"placement-predictor/internal/models"
	"placement-predictor/internal/repositories"
	"placement-predictor/internal/services"
)

type ResumeHandler struct {
	analysisService services.ResumeAnalysisService
	storageService  services.StorageService
	analysisRepo    repositories.AnalysisRepository
	maxFileSize     int64
}

func NewResumeHandler(
	analysisService services.ResumeAnalysisService,
	storageService services.StorageService,
	analysisRepo repositories.AnalysisRepository,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		analysisService: analysisService,
		storageService:  storageService,
		analysisRepo:    analysisRepo,
		maxFileSize:     maxFileSize,
	}
}

// HandleAnalyze handles POST /resume/analyze
func (h *ResumeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if fileHeader.Filename == "" || !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload a PDF file",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	jobRole := c.FormValue("job_role")
	userEmail := c.FormValue("user_email")

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	filename, _, err := h.storageService.SaveResume(fileHeader.Filename, data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume: %v", err),
		})
	}

	// Analysis never fails: extraction problems yield empty text and
	// provider failures fall back to the keyword analyzer.
	report := h.analysisService.Process(c.UserContext(), data, jobRole)

	record := &models.ResumeAnalysis{
		ID:           uuid.New(),
		UserEmail:    userEmail,
		JobRole:      report.JobRole,
		Filename:     filename,
		AnalysisText: report.Analysis,
		Source:       report.Source,
		CreatedAt:    time.Now(),
	}

	if err := h.analysisRepo.Create(record); err != nil {
		log.Printf("⚠️  Failed to save resume analysis record: %v\n", err)
	}

	return c.JSON(models.AnalyzeResponse{
		ID:       record.ID.String(),
		Message:  "Resume uploaded",
		JobRole:  report.JobRole,
		Analysis: report.Analysis,
		Source:   report.Source,
	})
}

// HandleGetAnalysis handles GET /resume/analysis/:id
func (h *ResumeHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume analysis not found",
		})
	}

	return c.JSON(analysis)
}
