// Package gemini backs the "google" provider with the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"tailor-backend/internal/llm"
	"tailor-backend/internal/shared/telemetry"
)

// Client implements llm.Client via google.golang.org/genai.
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewClient constructs a Gemini client. The underlying SDK performs no
// network call until content is generated.
func NewClient(ctx context.Context, model, apiKey string, temperature float32) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("model is required for Gemini")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key is required for Gemini")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, model: model, temperature: temperature}, nil
}

// Provider returns the provider name.
func (c *Client) Provider() string { return "google" }

// TailorResume sends the tailoring prompt and returns the raw model output.
func (c *Client) TailorResume(ctx context.Context, input llm.TailorInput) (string, error) {
	prompt := llm.BuildPrompt(input)

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(c.temperature),
		ResponseMIMEType: "application/json",
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt.Text()), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	telemetry.Info("llm.response", map[string]any{"provider": "google", "model": c.model})
	return output, nil
}

var _ llm.Client = (*Client)(nil)
