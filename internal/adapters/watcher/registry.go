package watcher

import (
	"path/filepath"
	"sort"
	"sync"
)

// Registry maps component paths to the query identities they own, so a
// changed file can be translated into the queries that must re-run.
type Registry struct {
	mu          sync.RWMutex
	byComponent map[string][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byComponent: make(map[string][]string)}
}

// Register records that the query identity is owned by the component at
// the given path. Registering the same pair twice is a no-op.
func (r *Registry) Register(componentPath, queryID string) {
	key := filepath.Clean(componentPath)

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.byComponent[key] {
		if id == queryID {
			return
		}
	}
	r.byComponent[key] = append(r.byComponent[key], queryID)
}

// QueriesFor returns the sorted, deduplicated query identities owned by
// any of the given component paths.
func (r *Registry) QueriesFor(paths []string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var ids []string
	for _, path := range paths {
		for _, id := range r.byComponent[filepath.Clean(path)] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
