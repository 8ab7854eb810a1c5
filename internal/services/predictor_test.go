package services

import "testing"

func TestPredictScenarios(t *testing.T) {
	predictor := NewPredictorService(NewDefaultRoleCatalog())

	cases := []struct {
		name           string
		input          PredictionInput
		wantPercentage float64
		wantMet        bool
	}{
		{
			name: "requirement met",
			input: PredictionInput{
				CGPA:                5.0,
				CommunicationSkills: 3,
				Certifications:      2,
				InternshipStatus:    "Active",
				JobRole:             "Software Engineer",
				Projects:            3,
				Skills:              "python,sql",
			},
			wantPercentage: 91.0,
			wantMet:        true,
		},
		{
			name: "requirement not met",
			input: PredictionInput{
				CGPA:                3.0,
				CommunicationSkills: 1,
				Certifications:      0,
				InternshipStatus:    "inactive",
				JobRole:             "Data Analyst",
				Projects:            0,
				Skills:              "",
			},
			wantPercentage: 35.0,
			wantMet:        false,
		},
		{
			name: "all bonuses capped clamps at 100",
			input: PredictionInput{
				CGPA:                9.0,
				CommunicationSkills: 5,
				Certifications:      10,
				InternshipStatus:    "active",
				JobRole:             "Software Engineer",
				Projects:            10,
				Skills:              "a,b,c,d,e,f,g,h,i,j,k,l",
			},
			wantPercentage: 100.0,
			wantMet:        true,
		},
		{
			name: "unknown role defaults min certifications to 0",
			input: PredictionInput{
				CGPA:                5.0,
				CommunicationSkills: 3,
				Certifications:      1,
				InternshipStatus:    "active",
				JobRole:             "Astronaut",
				Projects:            0,
				Skills:              "",
			},
			// 50 + 30 + 2 = 82, predicate passes because 1 > 0
			wantPercentage: 82.0,
			wantMet:        true,
		},
		{
			name: "inactive status fails predicate regardless of other bonuses",
			input: PredictionInput{
				CGPA:                9.5,
				CommunicationSkills: 5,
				Certifications:      8,
				InternshipStatus:    "inactive",
				JobRole:             "Software Engineer",
				Projects:            10,
				Skills:              "go,python,sql,docker,kubernetes,terraform,aws,gcp,azure,linux",
			},
			// 50 - 15 + 10 + 5 + 10 = 60
			wantPercentage: 60.0,
			wantMet:        false,
		},
		{
			name: "skills with blanks and padding are trimmed before counting",
			input: PredictionInput{
				CGPA:                3.0,
				CommunicationSkills: 1,
				Certifications:      0,
				InternshipStatus:    "inactive",
				JobRole:             "Data Analyst",
				Projects:            0,
				Skills:              " , python , ,",
			},
			// 50 - 15 + 0.5 = 35.5
			wantPercentage: 35.5,
			wantMet:        false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome := predictor.Predict(tc.input)

			if outcome.Percentage != tc.wantPercentage {
				t.Fatalf("percentage = %v, want %v", outcome.Percentage, tc.wantPercentage)
			}
			if outcome.MeetsRequirements != tc.wantMet {
				t.Fatalf("meets requirements = %v, want %v", outcome.MeetsRequirements, tc.wantMet)
			}
			if outcome.JobRole != tc.input.JobRole {
				t.Fatalf("job role = %q, want %q", outcome.JobRole, tc.input.JobRole)
			}
		})
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	predictor := NewPredictorService(NewDefaultRoleCatalog())

	input := PredictionInput{
		CGPA:                6.2,
		CommunicationSkills: 4,
		Certifications:      3,
		InternshipStatus:    "ACTIVE",
		JobRole:             "DevOps Engineer",
		Projects:            2,
		Skills:              "docker, kubernetes, terraform",
	}

	first := predictor.Predict(input)
	for i := 0; i < 50; i++ {
		if got := predictor.Predict(input); got != first {
			t.Fatalf("run %d produced %+v, first run produced %+v", i, got, first)
		}
	}
}

func TestPredictPercentageAlwaysInRange(t *testing.T) {
	predictor := NewPredictorService(NewDefaultRoleCatalog())

	inputs := []PredictionInput{
		{CGPA: -100, CommunicationSkills: -5, Certifications: -3, InternshipStatus: "", JobRole: "", Projects: -7},
		{CGPA: 1000, CommunicationSkills: 100, Certifications: 1000, InternshipStatus: "active", JobRole: "Data Scientist", Projects: 1000, Skills: "a,b,c"},
		{},
	}

	for _, input := range inputs {
		outcome := predictor.Predict(input)
		if outcome.Percentage < 0 || outcome.Percentage > 100 {
			t.Fatalf("percentage %v out of range for input %+v", outcome.Percentage, input)
		}
	}
}

func TestVerdictIndependentOfPercentage(t *testing.T) {
	predictor := NewPredictorService(NewDefaultRoleCatalog())

	// Verdict false while the percentage sits well above the minimum:
	// the verdict comes from the predicate, not from any threshold.
	outcome := predictor.Predict(PredictionInput{
		CGPA:                9.0,
		CommunicationSkills: 5,
		Certifications:      1, // not strictly above the role minimum of 1
		InternshipStatus:    "active",
		JobRole:             "Software Engineer",
		Projects:            5,
		Skills:              "go,python",
	})

	// 50 - 15 + 10 + 1 + 2 = 48
	if outcome.MeetsRequirements {
		t.Fatalf("expected verdict false when certifications equal the role minimum")
	}
	if outcome.Percentage != 48.0 {
		t.Fatalf("percentage = %v, want 48.0", outcome.Percentage)
	}
}
