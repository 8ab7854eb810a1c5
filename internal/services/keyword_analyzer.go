package services

import (
	"context"
	"fmt"
	"strings"
)

// ResumeAnalyzer produces a textual analysis of extracted resume text for a
// job role. Source identifies which backend produced the report.
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, text, role string) (string, error)
	Source() string
}

const localFallbackSource = "local-fallback"

type keywordAnalyzer struct {
	catalog *RoleCatalog
}

// NewKeywordAnalyzer builds the deterministic fallback analyzer. It matches
// role keywords by substring containment and never fails.
func NewKeywordAnalyzer(catalog *RoleCatalog) ResumeAnalyzer {
	return &keywordAnalyzer{catalog: catalog}
}

// Analyze implements ResumeAnalyzer.
func (a *keywordAnalyzer) Analyze(_ context.Context, text, role string) (string, error) {
	roleKeywords := a.catalog.Keywords(role)
	textLower := strings.ToLower(text)

	var found []string
	for _, kw := range roleKeywords {
		if strings.Contains(textLower, kw) {
			found = append(found, kw)
		}
	}

	// max(1, ...) guards the division for roles without configured keywords.
	expected := len(roleKeywords)
	if expected < 1 {
		expected = 1
	}
	pct := float64(len(found)) / float64(expected) * 100

	foundList := strings.Join(found, ", ")
	if foundList == "" {
		foundList = "None"
	}

	report := fmt.Sprintf("Basic Resume Analysis for %s:\nFound keywords: %s\nMatch: %.1f%%\n",
		role, foundList, pct)

	return report, nil
}

// Source implements ResumeAnalyzer.
func (a *keywordAnalyzer) Source() string {
	return localFallbackSource
}
