package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestCache(ttl time.Duration, maxEntries int) (*QueryCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return New(ttl, maxEntries, WithClock(clock.Now)), clock
}

func TestQueryCache_HitBeforeTTL_MissAfter(t *testing.T) {
	c, clock := newTestCache(60*time.Second, 100)
	results := []SearchResult{{Content: "Margherita - classic pizza", Score: 0.91}}

	c.Put("rest-1", "menu", "pizza", results)

	clock.Advance(59 * time.Second)
	got, ok := c.Get("rest-1", "menu", "pizza")
	assert.True(t, ok)
	assert.Equal(t, results, got)

	clock.Advance(2 * time.Second)
	_, ok = c.Get("rest-1", "menu", "pizza")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry should be removed on read")
}

func TestQueryCache_KeyNormalization(t *testing.T) {
	c, _ := newTestCache(time.Minute, 100)
	c.Put("rest-1", "menu", "  PIZZA  ", []SearchResult{{Content: "x"}})

	_, ok := c.Get("rest-1", "menu", "pizza")
	assert.True(t, ok, "queries differing only in case and whitespace share an entry")

	// Empty category and "all" are the same scope
	c.Put("rest-1", "", "hours", []SearchResult{{Content: "y"}})
	_, ok = c.Get("rest-1", "all", "hours")
	assert.True(t, ok)
}

func TestQueryCache_InvalidateRestaurant_AllCategories(t *testing.T) {
	c, _ := newTestCache(time.Minute, 100)
	c.Put("rest-1", "menu", "pizza", []SearchResult{{Content: "a"}})
	c.Put("rest-1", "hours", "sunday", []SearchResult{{Content: "b"}})
	c.Put("rest-2", "menu", "pizza", []SearchResult{{Content: "c"}})

	removed := c.InvalidateRestaurant("rest-1", "")
	assert.Equal(t, 2, removed)

	_, ok := c.Get("rest-1", "menu", "pizza")
	assert.False(t, ok, "invalidate-then-get must never observe a stale hit")
	_, ok = c.Get("rest-2", "menu", "pizza")
	assert.True(t, ok, "other tenants are untouched")
}

func TestQueryCache_InvalidateRestaurant_SingleCategory(t *testing.T) {
	c, _ := newTestCache(time.Minute, 100)
	c.Put("rest-1", "menu", "pizza", []SearchResult{{Content: "a"}})
	c.Put("rest-1", "hours", "sunday", []SearchResult{{Content: "b"}})

	removed := c.InvalidateRestaurant("rest-1", "menu")
	assert.Equal(t, 1, removed)

	_, ok := c.Get("rest-1", "menu", "pizza")
	assert.False(t, ok)
	_, ok = c.Get("rest-1", "hours", "sunday")
	assert.True(t, ok)
}

func TestQueryCache_EvictsOldestAtCapacity(t *testing.T) {
	c, clock := newTestCache(time.Minute, 3)

	for i := 0; i < 3; i++ {
		c.Put("rest-1", "menu", fmt.Sprintf("query-%d", i), []SearchResult{{Content: "x"}})
		clock.Advance(time.Second)
	}
	assert.Equal(t, 3, c.Len())

	c.Put("rest-1", "menu", "query-3", []SearchResult{{Content: "x"}})
	assert.Equal(t, 3, c.Len())

	_, ok := c.Get("rest-1", "menu", "query-0")
	assert.False(t, ok, "oldest entry is evicted first")
	_, ok = c.Get("rest-1", "menu", "query-3")
	assert.True(t, ok)
}

func TestQueryCache_PutWithTTL(t *testing.T) {
	c, clock := newTestCache(time.Minute, 100)
	c.PutWithTTL("rest-1", "menu", "special", []SearchResult{{Content: "x"}}, 5*time.Second)

	clock.Advance(4 * time.Second)
	_, ok := c.Get("rest-1", "menu", "special")
	assert.True(t, ok)

	clock.Advance(2 * time.Second)
	_, ok = c.Get("rest-1", "menu", "special")
	assert.False(t, ok)
}
