// Package limiter provides the fixed-window counters behind the rate-limit
// middleware. Counting lives behind the Store interface so deployments can
// run on Redis while development and tests run in memory.
package limiter

import (
	"context"
	"sync"
	"time"
)

// Store counts hits per key within a fixed window. Increment returns the
// count after this hit and the moment the current window resets.
type Store interface {
	Increment(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
}

// MemoryStore is the in-process fallback. Counts do not survive restarts and
// are not shared between instances.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
}

type memoryWindow struct {
	count   int
	resetAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*memoryWindow),
	}
}

func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	w, exists := s.windows[key]
	if !exists || now.After(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}

	w.count++
	return w.count, w.resetAt, nil
}
