package services

import (
	"context"
	"strings"
	"testing"
)

func TestKeywordAnalyzerMatches(t *testing.T) {
	analyzer := NewKeywordAnalyzer(NewDefaultRoleCatalog())

	report, err := analyzer.Analyze(context.Background(), "Built PYTHON services exposing a REST API", "Software Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(report, "Found keywords: python, api") {
		t.Fatalf("expected matched keywords in report, got:\n%s", report)
	}
	if !strings.Contains(report, "Match: 40.0%") {
		t.Fatalf("expected 40.0%% match (2 of 5 keywords), got:\n%s", report)
	}
	if !strings.Contains(report, "Software Engineer") {
		t.Fatalf("expected role name in report, got:\n%s", report)
	}
}

func TestKeywordAnalyzerNoMatches(t *testing.T) {
	analyzer := NewKeywordAnalyzer(NewDefaultRoleCatalog())

	report, err := analyzer.Analyze(context.Background(), "completely unrelated text", "Web Developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(report, "Found keywords: None") {
		t.Fatalf("expected None for matched keywords, got:\n%s", report)
	}
	if !strings.Contains(report, "Match: 0.0%") {
		t.Fatalf("expected 0.0%% match, got:\n%s", report)
	}
}

func TestKeywordAnalyzerRoleWithoutKeywords(t *testing.T) {
	analyzer := NewKeywordAnalyzer(NewDefaultRoleCatalog())

	// Roles without a configured keyword set must report 0.0% without a
	// division fault, whatever the text contains.
	report, err := analyzer.Analyze(context.Background(), "python java sql excel", "Cybersecurity Analyst")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(report, "Found keywords: None") {
		t.Fatalf("expected None for matched keywords, got:\n%s", report)
	}
	if !strings.Contains(report, "Match: 0.0%") {
		t.Fatalf("expected 0.0%% match for keyword-less role, got:\n%s", report)
	}
}

func TestKeywordAnalyzerEmptyText(t *testing.T) {
	analyzer := NewKeywordAnalyzer(NewDefaultRoleCatalog())

	report, err := analyzer.Analyze(context.Background(), "", "Data Analyst")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(report, "Match: 0.0%") {
		t.Fatalf("expected 0.0%% match for empty text, got:\n%s", report)
	}
}

func TestKeywordAnalyzerSource(t *testing.T) {
	analyzer := NewKeywordAnalyzer(NewDefaultRoleCatalog())

	if got := analyzer.Source(); got != "local-fallback" {
		t.Fatalf("source = %q, want local-fallback", got)
	}
}
