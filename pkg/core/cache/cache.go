package cache

import (
	"sync"
	"sync/atomic"
)

// Cache is a thread-safe string memo table. Entries never expire and the
// table is unbounded; it lives as long as its owner.
type Cache struct {
	mu       sync.RWMutex
	items    map[string]string
	disabled bool

	// Metrics
	hits   atomic.Int64
	misses atomic.Int64
}

// Stats is a point-in-time snapshot of a cache
type Stats struct {
	Size    int     `json:"size" yaml:"size"`
	Hits    int64   `json:"hits" yaml:"hits"`
	Misses  int64   `json:"misses" yaml:"misses"`
	HitRate float64 `json:"hit_rate" yaml:"hit_rate"`
}

// New creates an empty cache
func New() *Cache {
	return &Cache{
		items: make(map[string]string),
	}
}

// NewDisabled creates a cache that stores nothing. GetOrCompute always
// computes and every lookup counts as a miss.
func NewDisabled() *Cache {
	return &Cache{
		items:    make(map[string]string),
		disabled: true,
	}
}

// Enabled reports whether the cache stores values
func (c *Cache) Enabled() bool {
	return !c.disabled
}

// Get retrieves a value from the cache
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	value, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		return "", false
	}

	c.hits.Add(1)
	return value, true
}

// Set stores a value in the cache
func (c *Cache) Set(key, value string) {
	if c.disabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
}

// GetOrCompute returns the stored value for key, or calls compute, stores
// its result and returns it. compute runs outside the lock, so two callers
// missing on the same key may both compute; the first stored value wins and
// both callers see it.
func (c *Cache) GetOrCompute(key string, compute func(string) string) string {
	if value, ok := c.Get(key); ok {
		return value
	}

	value := compute(key)
	if c.disabled {
		return value
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Double-check after acquiring write lock
	if existing, exists := c.items[key]; exists {
		return existing
	}
	c.items[key] = value
	return value
}

// Clear removes all items and resets the counters
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]string)
	c.hits.Store(0)
	c.misses.Store(0)
}

// Size returns the number of items in the cache
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns cache statistics. HitRate is a percentage.
func (c *Cache) Stats() Stats {
	s := Stats{
		Size:   c.Size(),
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}
