package service

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generation is the part of a model response the recipe flow relies on
type Generation struct {
	// Parts holds the text of each content part of the first candidate
	Parts []string
	// Text is the concatenated plain text of the response
	Text string
}

// GeminiConfig configures the Gemini text generator
type GeminiConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint, mainly for proxies and tests
	BaseURL string
}

// GeminiGenerator handles interactions with the Gemini API
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator backed by a single shared genai client
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY must be set")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model identifier must be set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Model returns the model identifier every request is sent to
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Generate sends prompt to the configured model and waits for the full response
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (*Generation, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	gen := &Generation{}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part == nil {
				continue
			}
			gen.Parts = append(gen.Parts, part.Text)
		}
	}
	gen.Text = resp.Text()

	return gen, nil
}
