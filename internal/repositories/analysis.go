package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"placement-predictor/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.ResumeAnalysis) error
	FindByID(id uuid.UUID) (*models.ResumeAnalysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create implements AnalysisRepository.
func (r *analysisRepository) Create(analysis *models.ResumeAnalysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create resume analysis: %w", err)
	}

	return nil
}

// FindByID implements AnalysisRepository.
func (r *analysisRepository) FindByID(id uuid.UUID) (*models.ResumeAnalysis, error) {
	var analysis models.ResumeAnalysis
	if err := r.db.Where("id = ?", id).First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("resume analysis not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find resume analysis: %w", err)
	}

	return &analysis, nil
}
