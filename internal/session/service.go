// Package session tracks per-session free-tier consumption.
package session

import "context"

type store interface {
	Get(ctx context.Context, sessionID string) (Counter, error)
	Consume(ctx context.Context, sessionID string) (Counter, error)
	Reset(ctx context.Context, sessionID string) (Counter, error)
}

// Service gates tailoring calls against the free-tier cap.
type Service struct {
	store store
}

// NewService constructs a Service with an in-memory store and the given cap.
func NewService(limit int) *Service {
	return &Service{store: newMemoryStore(limit)}
}

// Get returns the current counter for a session.
func (s *Service) Get(ctx context.Context, sessionID string) (Counter, error) {
	return s.store.Get(ctx, sessionID)
}

// Acquire consumes one free-tier unit before a backend call. Sessions that
// bring their own API key bypass the gate and leave the counter untouched.
// At the cap it returns ErrLimitReached and the backend must not be called.
func (s *Service) Acquire(ctx context.Context, sessionID string, hasOwnKey bool) (Counter, error) {
	if hasOwnKey {
		return s.store.Get(ctx, sessionID)
	}
	return s.store.Consume(ctx, sessionID)
}

// Reset clears a session's counter. Equivalent to starting a new session.
func (s *Service) Reset(ctx context.Context, sessionID string) (Counter, error) {
	return s.store.Reset(ctx, sessionID)
}
