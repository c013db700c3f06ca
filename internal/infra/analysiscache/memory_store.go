package analysiscache

import (
	"context"
	"sync"
	"time"

	"github.com/syedmuhib/meeting-assistant/internal/domain/notes"
)

type record struct {
	payload   notes.Analysis
	expiresAt time.Time
}

// MemoryStore is an in-memory implementation of the analysis cache for
// tests/dev and the fallback when no Valkey instance is reachable.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]record
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]record)}
}

// Get implements notes.Store.
func (s *MemoryStore) Get(_ context.Context, key string) (notes.Analysis, bool, error) {
	if key == "" {
		return notes.Analysis{}, false, nil
	}
	s.mu.RLock()
	rec, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return notes.Analysis{}, false, nil
	}
	if hasExpired(rec.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return notes.Analysis{}, false, nil
	}
	return rec.payload, true, nil
}

// Save caches the analysis with optional TTL.
func (s *MemoryStore) Save(_ context.Context, key string, analysis notes.Analysis, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = record{payload: analysis, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ notes.Store = (*MemoryStore)(nil)
