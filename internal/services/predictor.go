package services

import (
	"math"
	"strings"
)

type PredictionInput struct {
	CGPA                float64
	CommunicationSkills int
	Certifications      int
	InternshipStatus    string
	JobRole             string
	Projects            int
	Skills              string
}

// PredictionOutcome carries two independent signals: the percentage and the
// requirement verdict. The verdict is NOT derived from the percentage.
type PredictionOutcome struct {
	JobRole           string
	Percentage        float64
	MeetsRequirements bool
}

type PredictorService interface {
	Predict(input PredictionInput) PredictionOutcome
}

type predictorService struct {
	catalog *RoleCatalog
}

func NewPredictorService(catalog *RoleCatalog) PredictorService {
	return &predictorService{catalog: catalog}
}

// Predict implements PredictorService. Pure and deterministic; invalid
// numeric input is expected to be coerced to 0 at the handler boundary.
func (p *predictorService) Predict(input PredictionInput) PredictionOutcome {
	base := 50.0

	minCerts := p.catalog.MinCertifications(input.JobRole)
	requirementMet := input.CGPA > 4.0 &&
		input.CommunicationSkills > 2 &&
		input.Certifications > minCerts &&
		strings.EqualFold(input.InternshipStatus, "active")

	if requirementMet {
		base += 30.0
	} else {
		base -= 15.0
	}

	base += math.Min(float64(input.Projects)*2, 10)

	if input.Skills != "" {
		base += math.Min(float64(countSkills(input.Skills))*0.5, 5)
	}

	base += math.Min(float64(input.Certifications)*2, 10)

	predicted := math.Max(0.0, math.Min(100.0, base))
	predicted = math.Round(predicted*100) / 100

	return PredictionOutcome{
		JobRole:           input.JobRole,
		Percentage:        predicted,
		MeetsRequirements: requirementMet,
	}
}

func countSkills(skills string) int {
	count := 0
	for _, s := range strings.Split(skills, ",") {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	return count
}
