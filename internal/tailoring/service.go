// Package tailoring orchestrates one resume-tailoring call: gate, job
// fetch, backend invocation, and schema validation.
package tailoring

import (
	"context"
	"strings"
	"time"

	"tailor-backend/internal/jobs"
	"tailor-backend/internal/llm"
	"tailor-backend/internal/session"
	"tailor-backend/internal/shared/config"
	"tailor-backend/internal/shared/metrics"
	"tailor-backend/internal/shared/telemetry"
)

// TailorRequest is one tailoring invocation. JobURL and JobText are
// mutually exclusive; exactly one must be set.
type TailorRequest struct {
	SessionID  string
	ResumeText string
	JobURL     string
	JobText    string
	Provider   string
	APIKey     string
}

// Service ties the gate, the fetcher, and the provider backends together.
type Service struct {
	Providers       map[string]config.ProviderConfig
	DefaultProvider string
	Gate            *session.Service
	Fetcher         *jobs.Fetcher

	// newBackend is swapped out in tests.
	newBackend func(ctx context.Context, providers map[string]config.ProviderConfig, name, callerKey string) (llm.Client, error)
}

// NewService constructs a Service.
func NewService(cfg config.Config, gate *session.Service) *Service {
	return &Service{
		Providers:       config.Providers(),
		DefaultProvider: cfg.DefaultProvider,
		Gate:            gate,
		Fetcher:         jobs.NewFetcher(),
		newBackend:      NewBackend,
	}
}

// Tailor runs one synchronous tailoring sequence. The counter is consumed
// exactly once per accepted call, after the provider handle is built and
// before anything that can still fail downstream; a failed fetch or
// backend call therefore still counts against the free tier.
func (s *Service) Tailor(ctx context.Context, req TailorRequest) (ParseResult, session.Counter, error) {
	provider := strings.TrimSpace(req.Provider)
	if provider == "" {
		provider = s.DefaultProvider
	}

	backend, err := s.newBackend(ctx, s.Providers, provider, req.APIKey)
	if err != nil {
		return ParseResult{}, session.Counter{}, err
	}

	hasOwnKey := strings.TrimSpace(req.APIKey) != ""
	counter, err := s.Gate.Acquire(ctx, req.SessionID, hasOwnKey)
	if err != nil {
		return ParseResult{}, counter, err
	}

	metrics.IncTailorStarted()
	started := time.Now()

	jobText := jobs.Normalize(req.JobText)
	if req.JobURL != "" {
		jobText, err = s.Fetcher.FetchText(ctx, req.JobURL)
		if err != nil {
			metrics.IncTailorFailed()
			return ParseResult{}, counter, err
		}
	}

	raw, err := backend.TailorResume(ctx, llm.TailorInput{
		ResumeText: req.ResumeText,
		JobText:    jobText,
	})
	if err != nil {
		metrics.IncTailorFailed()
		return ParseResult{}, counter, err
	}

	result, err := Parse(raw)
	if err != nil {
		metrics.IncTailorFailed()
		return ParseResult{}, counter, err
	}

	metrics.IncTailorCompleted()
	metrics.ObserveTailorDurationMs(float64(time.Since(started).Milliseconds()))

	telemetry.Info("tailor.complete", map[string]any{
		"session_id":       req.SessionID,
		"provider":         backend.Provider(),
		"own_key":          hasOwnKey,
		"defaulted_fields": result.DefaultedFields,
	})
	return result, counter, nil
}
