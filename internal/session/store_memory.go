package session

import (
	"context"
	"sync"
)

// Counters live only as long as the process; a session that disappears
// simply stops being asked about.
type memoryStore struct {
	mu    sync.Mutex
	limit int
	data  map[string]int
}

func newMemoryStore(limit int) *memoryStore {
	return &memoryStore{
		limit: limit,
		data:  make(map[string]int),
	}
}

func (s *memoryStore) Get(ctx context.Context, sessionID string) (Counter, error) {
	if err := ctx.Err(); err != nil {
		return Counter{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return Counter{Used: s.data[sessionID], Limit: s.limit}, nil
}

func (s *memoryStore) Consume(ctx context.Context, sessionID string) (Counter, error) {
	if err := ctx.Err(); err != nil {
		return Counter{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	used := s.data[sessionID]
	if used >= s.limit {
		return Counter{Used: used, Limit: s.limit}, ErrLimitReached
	}
	used++
	s.data[sessionID] = used
	return Counter{Used: used, Limit: s.limit}, nil
}

func (s *memoryStore) Reset(ctx context.Context, sessionID string) (Counter, error) {
	if err := ctx.Err(); err != nil {
		return Counter{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return Counter{Used: 0, Limit: s.limit}, nil
}
