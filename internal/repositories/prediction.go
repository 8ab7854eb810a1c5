package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"placement-predictor/internal/models"
)

// PredictionRepository is append-only: records are created once per request
// and never updated afterwards.
type PredictionRepository interface {
	Create(prediction *models.Prediction) error
	FindByID(id uuid.UUID) (*models.Prediction, error)
}

type predictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

// Create implements PredictionRepository.
func (r *predictionRepository) Create(prediction *models.Prediction) error {
	if err := r.db.Create(prediction).Error; err != nil {
		return fmt.Errorf("failed to create prediction: %w", err)
	}

	return nil
}

// FindByID implements PredictionRepository.
func (r *predictionRepository) FindByID(id uuid.UUID) (*models.Prediction, error) {
	var prediction models.Prediction
	if err := r.db.Where("id = ?", id).First(&prediction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("prediction not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find prediction: %w", err)
	}

	return &prediction, nil
}
