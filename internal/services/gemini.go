package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const (
	// Prompt payloads are capped to respect provider limits.
	maxPromptChars = 3000
	// Every provider call runs under this timeout; expiry is treated like
	// any other provider failure.
	providerTimeout = 20 * time.Second
)

type geminiAnalyzer struct {
	client    *genai.Client
	modelName string
}

// NewGeminiAnalyzer builds the external resume analyzer. Callers construct
// it only when a provider and API key are configured; any failure it returns
// must trigger fallback to the keyword analyzer.
func NewGeminiAnalyzer(apiKey, modelName string) (ResumeAnalyzer, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiAnalyzer{
		client:    client,
		modelName: modelName,
	}, nil
}

// Analyze implements ResumeAnalyzer. On success the provider text is
// returned verbatim.
func (g *geminiAnalyzer) Analyze(ctx context.Context, text, role string) (string, error) {
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}

	prompt := fmt.Sprintf(
		"Analyze this resume for a %s position and provide match percentage, strengths, weaknesses, and recommendations.\n\n%s",
		role, text)

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	temperature := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 800,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate analysis: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	analysis := resp.Text()
	if analysis == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return analysis, nil
}

// Source implements ResumeAnalyzer.
func (g *geminiAnalyzer) Source() string {
	return "gemini"
}
