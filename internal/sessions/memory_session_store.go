package sessions

import (
	"context"
	"sync"
	"time"
)

// MemorySessionStore keeps sessions in process memory. Used in tests and
// when running without Redis.
type MemorySessionStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	memberID int64
	expires  time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{entries: make(map[string]memoryEntry)}
}

func (s *MemorySessionStore) Save(ctx context.Context, token string, memberID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = memoryEntry{
		memberID: memberID,
		expires:  time.Now().Add(ttl),
	}
	return nil
}

func (s *MemorySessionStore) Lookup(ctx context.Context, token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok || time.Now().After(entry.expires) {
		delete(s.entries, token)
		return 0, ErrSessionNotFound
	}
	return entry.memberID, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, token)
	return nil
}
