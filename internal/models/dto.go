package models

// PredictRequest carries the raw prediction payload. Numeric fields are
// declared as interface{} so that string or missing values can be coerced
// to safe defaults at the handler boundary instead of failing to parse.
type PredictRequest struct {
	UserEmail           string      `json:"user_email"`
	CGPA                interface{} `json:"cgpa"`
	CommunicationSkills interface{} `json:"communication_skills"`
	Certifications      interface{} `json:"certifications"`
	InternshipStatus    string      `json:"internship_status"`
	JobRole             string      `json:"job_role"`
	Projects            interface{} `json:"projects"`
	Skills              string      `json:"skills"`
}

type PredictResponse struct {
	ID                  string  `json:"id"`
	JobRole             string  `json:"job_role"`
	PredictedPercentage float64 `json:"predicted_percentage"`
	MeetsRequirements   bool    `json:"meets_requirements"`
	GuidelinesURL       *string `json:"guidelines_url"`
}

type EmailGuidelinesRequest struct {
	JobRole string `json:"job_role"`
	Email   string `json:"email"`
}

type AnalyzeResponse struct {
	ID       string `json:"id"`
	Message  string `json:"message"`
	JobRole  string `json:"job_role"`
	Analysis string `json:"analysis"`
	Source   string `json:"source"`
}
