package panchangstore

import (
	"context"
	"sync"
	"time"

	"github.com/senthamizh/panchangam/internal/domain/panchang"
)

type memoryEntry struct {
	payload   panchang.Response
	expiresAt time.Time
}

// MemoryStore is an in-memory panchang.Store for tests and single-node
// deployments without Valkey.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Get implements panchang.Store.
func (s *MemoryStore) Get(_ context.Context, key string) (panchang.Response, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return panchang.Response{}, false, nil
	}
	if hasExpired(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return panchang.Response{}, false, nil
	}
	return e.payload, true, nil
}

// Save implements panchang.Store.
func (s *MemoryStore) Save(_ context.Context, key string, resp panchang.Response, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.entries[key] = memoryEntry{payload: resp, expiresAt: exp}
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ panchang.Store = (*MemoryStore)(nil)
