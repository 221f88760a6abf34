package cache

import (
	"sort"
	"sync"
)

// Store groups independent caches under names. Each renderer of a
// conversion library owns one namespace so equal inputs never collide.
type Store struct {
	mu         sync.RWMutex
	namespaces map[string]*Cache
	disabled   bool
}

// StoreConfig holds store configuration
type StoreConfig struct {
	// Disabled makes every namespace compute on each call
	Disabled bool
}

// NewStore creates an empty store
func NewStore(cfg StoreConfig) *Store {
	return &Store{
		namespaces: make(map[string]*Cache),
		disabled:   cfg.Disabled,
	}
}

// Namespace returns the cache registered under name, creating it on first use
func (s *Store) Namespace(name string) *Cache {
	s.mu.RLock()
	c, ok := s.namespaces[name]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.namespaces[name]; ok {
		return c
	}

	if s.disabled {
		c = NewDisabled()
	} else {
		c = New()
	}
	s.namespaces[name] = c
	return c
}

// Names returns the registered namespace names in sorted order
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.namespaces))
	for name := range s.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stats returns a snapshot of every namespace
func (s *Store) Stats() map[string]Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Stats, len(s.namespaces))
	for name, c := range s.namespaces {
		out[name] = c.Stats()
	}
	return out
}

// Clear empties every namespace
func (s *Store) Clear() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.namespaces {
		c.Clear()
	}
}
