// Package anthropic backs the "anthropic" provider with the Claude
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"tailor-backend/internal/llm"
	"tailor-backend/internal/shared/telemetry"
)

const maxTokens = 4096

// Client implements llm.Client via the Anthropic SDK.
type Client struct {
	client      sdk.Client
	model       string
	temperature float32
}

// NewClient constructs an Anthropic client. No network call is made here.
func NewClient(model, apiKey string, temperature float32) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("model is required for Anthropic")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key is required for Anthropic")
	}

	client := sdk.NewClient(option.WithAPIKey(apiKey))
	return &Client{client: client, model: model, temperature: temperature}, nil
}

// Provider returns the provider name.
func (c *Client) Provider() string { return "anthropic" }

// TailorResume sends the tailoring prompt and returns the raw model output.
func (c *Client) TailorResume(ctx context.Context, input llm.TailorInput) (string, error) {
	prompt := llm.BuildPrompt(input)

	resp, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   maxTokens,
		Temperature: sdk.Float(float64(c.temperature)),
		System: []sdk.TextBlockParam{
			{Text: prompt.System},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt.User)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", errors.New("anthropic api returned empty response")
	}

	var builder strings.Builder
	for _, block := range resp.Content {
		text := strings.TrimSpace(block.AsText().Text)
		if text == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(text)
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("anthropic response has no text content")
	}
	telemetry.Info("llm.response", map[string]any{"provider": "anthropic", "model": c.model})
	return output, nil
}

var _ llm.Client = (*Client)(nil)
