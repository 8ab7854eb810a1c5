package models

import (
	"time"

	"github.com/google/uuid"
)

type Prediction struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserEmail           string    `gorm:"type:text" json:"user_email"`
	JobRole             string    `gorm:"type:text;not null" json:"job_role"`
	CGPA                float64   `gorm:"not null" json:"cgpa"`
	CommunicationSkills int       `gorm:"not null" json:"communication_skills"`
	Certifications      int       `gorm:"not null" json:"certifications"`
	InternshipStatus    string    `gorm:"type:text;not null" json:"internship_status"`
	Projects            int       `gorm:"not null;default:0" json:"projects"`
	Skills              string    `gorm:"type:text" json:"skills"`
	PredictedPercentage float64   `gorm:"not null" json:"predicted_percentage"`
	MeetsRequirements   bool      `gorm:"not null" json:"meets_requirements"`
	CreatedAt           time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Prediction) TableName() string {
	return "predictions"
}
