package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/maypok86/otter"
)

const memoryStoreCapacity = 100000

type counter struct {
	start time.Time
	n     int64
}

// MemoryStore keeps fixed-window counters in process memory. Entries carry a
// TTL equal to their window, so stale windows fall out of the cache without a
// janitor. State is volatile and lost on restart.
type MemoryStore struct {
	mu    sync.Mutex
	cache otter.CacheWithVariableTTL[string, *counter]
	clock Clock
}

func NewMemoryStore(clock Clock) *MemoryStore {
	cache, err := otter.MustBuilder[string, *counter](memoryStoreCapacity).
		WithVariableTTL().
		Build()
	if err != nil {
		panic(err)
	}

	return &MemoryStore{
		cache: cache,
		clock: clock,
	}
}

func (s *MemoryStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cache.Get(key)
	if !ok || now.Sub(c.start) >= window {
		c = &counter{start: now}
		s.cache.Set(key, c, window)
	}

	c.n++
	return c.n, nil
}

func (s *MemoryStore) Close() {
	s.cache.Close()
}
