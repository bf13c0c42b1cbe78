package query

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// MemoryStore keeps entries in process memory. Expired entries are hidden from Get and
// removed by Cleanup.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[key]
	if !ok || s.expired(item) {
		return Entry{}, false, nil
	}

	return item.entry, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, entry Entry, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := memoryEntry{entry: entry}
	if ttl > 0 {
		item.expiresAt = s.now().Add(ttl)
	}

	s.items[key] = item

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.items, key)
	}

	return nil
}

func (s *MemoryStore) DeletePrefix(_ context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
		}
	}

	return nil
}

// Cleanup removes expired entries.
func (s *MemoryStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()

	removed := 0

	for key, item := range s.items {
		if s.expired(item) {
			delete(s.items, key)
			removed++
		}
	}

	left := len(s.items)

	s.mu.Unlock()

	slog.DebugContext(ctx, "query cache cleaned up", "removed", removed, "left", left)

	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *MemoryStore) expired(item memoryEntry) bool {
	return !item.expiresAt.IsZero() && !s.now().Before(item.expiresAt)
}
