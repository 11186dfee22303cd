// Command checkmodels lists the Gemini models the configured key can use
// for text generation.
package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"google.golang.org/genai"

	"tailor-backend/internal/shared/config"
)

func main() {
	cfg, ok := config.Providers()["google"]
	if !ok {
		fmt.Fprintln(os.Stderr, "google provider is not configured")
		os.Exit(1)
	}
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		fmt.Fprintf(os.Stderr, "%s is not set\n", cfg.APIKeyEnv)
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "create client: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--- AVAILABLE MODELS ---")
	found := false
	for model, err := range client.Models.All(ctx) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "list models: %v\n", err)
			os.Exit(1)
		}
		if !slices.Contains(model.SupportedActions, "generateContent") {
			continue
		}
		fmt.Printf("NAME: %s\n", model.Name)
		found = true
	}
	if !found {
		fmt.Println("no text generation models found; check your API key permissions")
	}
}
