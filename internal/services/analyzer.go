package services

import (
	"context"
	"log"
)

// AnalysisReport is the result of a resume analysis. Reports are created
// once and never mutated; persistence belongs to the caller.
type AnalysisReport struct {
	JobRole  string
	Analysis string
	Source   string
}

// ResumeAnalysisService orchestrates extraction and analysis. No failure of
// the external provider may ever surface to the caller: every request ends
// in a report, with only the Source tag revealing which backend answered.
type ResumeAnalysisService interface {
	Process(ctx context.Context, data []byte, role string) AnalysisReport
}

type resumeAnalysisService struct {
	extractor ResumeTextExtractor
	provider  ResumeAnalyzer // nil when no external provider is configured
	fallback  ResumeAnalyzer
}

// NewResumeAnalysisService wires the two-tier analyzer. The provider is
// chosen once at startup from configuration; pass nil to run fallback-only.
func NewResumeAnalysisService(
	extractor ResumeTextExtractor,
	provider ResumeAnalyzer,
	fallback ResumeAnalyzer,
) ResumeAnalysisService {
	return &resumeAnalysisService{
		extractor: extractor,
		provider:  provider,
		fallback:  fallback,
	}
}

// Process implements ResumeAnalysisService.
func (s *resumeAnalysisService) Process(ctx context.Context, data []byte, role string) AnalysisReport {
	text := s.extractor.ExtractText(data)

	if s.provider != nil {
		analysis, err := s.provider.Analyze(ctx, text, role)
		if err == nil {
			return AnalysisReport{
				JobRole:  role,
				Analysis: analysis,
				Source:   s.provider.Source(),
			}
		}
		log.Printf("⚠️  Provider analysis failed, using fallback: %v\n", err)
	}

	// The fallback analyzer never fails.
	analysis, _ := s.fallback.Analyze(ctx, text, role)

	return AnalysisReport{
		JobRole:  role,
		Analysis: analysis,
		Source:   s.fallback.Source(),
	}
}
