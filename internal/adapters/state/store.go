// Package state implements the in-memory build state store.
package state

import (
	"sort"
	"sync"

	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/lithos/internal/core/ports"
)

var _ ports.StateStore = (*Store)(nil)

// Store is an in-memory ports.StateStore. It records which queries ran,
// which pages still need a page-data write, and the latest page result
// hashes. It lives for one build session.
type Store struct {
	mu      sync.RWMutex
	ran     map[string]domain.QueryRun
	pending map[string]struct{}
	hashes  map[string]string
}

// NewStore creates an empty state store.
func NewStore() *Store {
	return &Store{
		ran:     make(map[string]domain.QueryRun),
		pending: make(map[string]struct{}),
		hashes:  make(map[string]string),
	}
}

// Dispatch delivers one action to the store. Unknown action types are
// ignored.
func (s *Store) Dispatch(action domain.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch a := action.(type) {
	case domain.QueryRun:
		s.ran[a.Path] = a
	case domain.PendingPageDataWrite:
		s.pending[a.Path] = struct{}{}
	case domain.SetPageData:
		s.hashes[a.ID] = a.ResultHash
	}
}

// RanQueries returns every query recorded as run, sorted by path.
func (s *Store) RanQueries() []domain.QueryRun {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]domain.QueryRun, 0, len(s.ran))
	for _, run := range s.ran {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Path < runs[j].Path })
	return runs
}

// PendingPageDataWrites returns the page paths awaiting the final
// page-data pass, sorted.
func (s *Store) PendingPageDataWrites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.pending))
	for path := range s.pending {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// ClearPendingPageDataWrite removes a page from the pending set once its
// page-data file has been promoted.
func (s *Store) ClearPendingPageDataWrite(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, path)
}

// PageDataHash returns the last published result hash for a page.
func (s *Store) PageDataHash(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.hashes[id]
	return hash, ok
}
