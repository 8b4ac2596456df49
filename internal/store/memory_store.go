package store

import (
	"sync"

	"fixtures-service/internal/domain"
)

// MemoryStore keeps a thread-safe copy of the last aggregated view so the
// fixtures endpoint can serve without re-running extraction.
type MemoryStore struct {
	mu   sync.RWMutex
	view domain.FixturesResponse
	set  bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// View returns the cached aggregate view and whether one has been stored.
func (s *MemoryStore) View() (domain.FixturesResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view, s.set
}

// SetView replaces the cached aggregate view.
func (s *MemoryStore) SetView(view domain.FixturesResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
	s.set = true
}
