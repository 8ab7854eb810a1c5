package models

import (
	"time"

	"github.com/google/uuid"
)

type ResumeAnalysis struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserEmail    string    `gorm:"type:text" json:"user_email"`
	JobRole      string    `gorm:"type:text;not null" json:"job_role"`
	Filename     string    `gorm:"type:text;not null" json:"filename"`
	AnalysisText string    `gorm:"type:text" json:"analysis_text"`
	Source       string    `gorm:"type:text" json:"source"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ResumeAnalysis) TableName() string {
	return "resume_analyses"
}
