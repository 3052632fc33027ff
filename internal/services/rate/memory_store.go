package rate

import (
	"context"
	"sync"
	"time"
)

type windowEntry struct {
	count   int64
	resetAt time.Time
}

// MemoryStore is the in-process CounterStore. It bounds abuse per running
// instance only; horizontally scaled deployments should use the
// redis-backed store so the window counters are shared.
//
// Entries reset lazily on access once their window has elapsed and are
// removed wholesale by PurgeExpired, which the sweep job calls.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]windowEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]windowEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()

	entry, ok := s.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		entry = windowEntry{count: 1, resetAt: now.Add(window)}
	} else {
		entry.count++
	}
	s.entries[key] = entry

	return entry.count, entry.resetAt, nil
}

func (s *MemoryStore) PurgeExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for key, entry := range s.entries {
		if !now.Before(entry.resetAt) {
			delete(s.entries, key)
			purged++
		}
	}

	return purged, nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
