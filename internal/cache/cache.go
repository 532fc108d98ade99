// Package cache provides the in-process TTL cache that sits in front of the
// knowledge base search. It is best effort: correctness never depends on a
// hit, only on bounded staleness, so invalidation is synchronous and expiry
// is checked lazily on every read.
package cache

import (
	"strings"
	"sync"
	"time"
)

// SearchResult is a ranked snippet returned by the knowledge base search.
type SearchResult struct {
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
	Score    float64                `json:"score"`
}

type entry struct {
	results   []SearchResult
	expiresAt time.Time
	storedAt  time.Time
}

// QueryCache caches knowledge base search results per restaurant, category
// and query. Safe for concurrent use.
type QueryCache struct {
	mu         sync.Mutex
	entries    map[string]entry
	defaultTTL time.Duration
	maxEntries int
	now        func() time.Time
}

// Option configures a QueryCache.
type Option func(*QueryCache)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *QueryCache) {
		c.now = now
	}
}

// New creates a QueryCache with the given default TTL and capacity bound.
func New(defaultTTL time.Duration, maxEntries int, opts ...Option) *QueryCache {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	c := &QueryCache{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		maxEntries: maxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// key builds the cache key. Category defaults to "all" so that uncategorized
// queries do not collide with category-scoped ones.
func key(restaurantID, category, query string) string {
	if category == "" {
		category = "all"
	}
	return restaurantID + ":" + category + ":" + strings.TrimSpace(strings.ToLower(query))
}

// Get returns the cached results for the query, or ok=false on a miss.
// Expired entries are removed on read.
func (c *QueryCache) Get(restaurantID, category, query string) ([]SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(restaurantID, category, query)
	e, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, k)
		return nil, false
	}
	return e.results, true
}

// Put stores results with the default TTL.
func (c *QueryCache) Put(restaurantID, category, query string, results []SearchResult) {
	c.PutWithTTL(restaurantID, category, query, results, c.defaultTTL)
}

// PutWithTTL stores results with an explicit TTL. When the cache is full the
// oldest entry is evicted first.
func (c *QueryCache) PutWithTTL(restaurantID, category, query string, results []SearchResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}

	now := c.now()
	c.entries[key(restaurantID, category, query)] = entry{
		results:   results,
		expiresAt: now.Add(ttl),
		storedAt:  now,
	}
}

// InvalidateRestaurant removes every entry for the restaurant, optionally
// scoped to a single category. It returns only after the entries are gone:
// an invalidate-then-query sequence never observes a stale hit.
func (c *QueryCache) InvalidateRestaurant(restaurantID, category string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := restaurantID + ":"
	if category != "" {
		prefix = restaurantID + ":" + category + ":"
	}

	removed := 0
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries currently held, including any not yet
// lazily expired.
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *QueryCache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.storedAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.storedAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
