// Package llm abstracts the interchangeable model backends used for
// resume tailoring.
package llm

import (
	"context"
	"errors"
)

// Client is a ready-to-invoke backend handle bound to one provider's model
// and temperature. Implementations perform no I/O at construction time.
type Client interface {
	TailorResume(ctx context.Context, input TailorInput) (string, error)
	Provider() string
}

// TailorInput carries the two documents the prompt is built from.
type TailorInput struct {
	ResumeText string
	JobText    string
}

// ErrUnknownProvider is returned for provider names outside the supported set.
var ErrUnknownProvider = errors.New("unknown provider")

// ErrMissingCredential is returned when neither the caller nor the
// environment supplies an API key for the selected provider.
var ErrMissingCredential = errors.New("no API key available for provider")
