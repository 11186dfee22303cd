package tailoring

import (
	"context"
	"fmt"
	"os"
	"strings"

	"tailor-backend/internal/llm"
	"tailor-backend/internal/llm/anthropic"
	"tailor-backend/internal/llm/gemini"
	"tailor-backend/internal/llm/openai"
	"tailor-backend/internal/shared/config"
)

// backendBuilder constructs a provider handle. Construction never dials out.
type backendBuilder func(ctx context.Context, cfg config.ProviderConfig, apiKey string) (llm.Client, error)

// backends maps provider names to constructors; selection is a table
// lookup, not a conditional chain.
var backends = map[string]backendBuilder{
	"google": func(ctx context.Context, cfg config.ProviderConfig, apiKey string) (llm.Client, error) {
		return gemini.NewClient(ctx, cfg.Model, apiKey, cfg.Temperature)
	},
	"openai": func(ctx context.Context, cfg config.ProviderConfig, apiKey string) (llm.Client, error) {
		return openai.NewClient(cfg.Model, apiKey, cfg.Temperature)
	},
	"anthropic": func(ctx context.Context, cfg config.ProviderConfig, apiKey string) (llm.Client, error) {
		return anthropic.NewClient(cfg.Model, apiKey, cfg.Temperature)
	},
}

// NewBackend selects a provider by name and returns a handle bound to its
// configured model and temperature. The caller-supplied key wins over the
// provider's environment variable; neither present means
// llm.ErrMissingCredential. A key that exists but is wrong is not detected
// here — that surfaces as the backend's own authentication failure at call
// time.
func NewBackend(ctx context.Context, providers map[string]config.ProviderConfig, name, callerKey string) (llm.Client, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	cfg, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", llm.ErrUnknownProvider, name)
	}
	builder, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", llm.ErrUnknownProvider, name)
	}

	apiKey := strings.TrimSpace(callerKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv(cfg.APIKeyEnv))
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set %s or supply your own key", llm.ErrMissingCredential, cfg.APIKeyEnv)
	}

	return builder(ctx, cfg, apiKey)
}
