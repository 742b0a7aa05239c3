package planner

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MealPlanner_Go/internal/metrics"
)

// CacheConfig sizes the per-entity read caches
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports the effectiveness of one cache
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cloner is implemented by entities that can copy themselves deeply
type cloner[T any] interface {
	Clone() T
}

// entityCache is an expiring LRU of entities keyed by id. Entities are cloned
// on the way in and out, so callers never share memory with the cache.
type entityCache[T cloner[T]] struct {
	name   string
	lru    *expirable.LRU[string, T]
	hits   atomic.Int64
	misses atomic.Int64
}

func newEntityCache[T cloner[T]](name string, cfg CacheConfig) *entityCache[T] {
	size := cfg.Size
	if size <= 0 {
		size = DefaultCacheSize
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &entityCache[T]{
		name: name,
		lru:  expirable.NewLRU[string, T](size, nil, ttl),
	}
}

// Get returns the cached entity and records a hit or miss
func (c *entityCache[T]) Get(id string) (T, bool) {
	v, ok := c.lru.Get(id)
	if !ok {
		c.misses.Add(1)
		metrics.CacheLookups.WithLabelValues(c.name, metrics.ResultMiss).Inc()
		return v, false
	}
	c.hits.Add(1)
	metrics.CacheLookups.WithLabelValues(c.name, metrics.ResultHit).Inc()
	return v.Clone(), true
}

// Peek returns the cached entity without touching recency or stats
func (c *entityCache[T]) Peek(id string) (T, bool) {
	v, ok := c.lru.Peek(id)
	if !ok {
		return v, false
	}
	return v.Clone(), true
}

func (c *entityCache[T]) Set(id string, v T) {
	c.lru.Add(id, v.Clone())
}

func (c *entityCache[T]) Invalidate(id string) {
	c.lru.Remove(id)
}

func (c *entityCache[T]) Clear() {
	c.lru.Purge()
}

func (c *entityCache[T]) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
