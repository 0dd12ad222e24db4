package session

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/metrics"
)

// CacheConfig sizes the farm state cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedFarmEntry struct {
	Version  string
	Farm     domain.Farm
	CachedAt time.Time
}

// farmCache keeps recently used farms in memory with time-based expiry.
// Entries are only written after a successful save, so a hit is never
// ahead of storage.
type farmCache struct {
	lru    *expirable.LRU[string, *cachedFarmEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newFarmCache(cfg CacheConfig) *farmCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	return &farmCache{
		lru: expirable.NewLRU[string, *cachedFarmEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a copy of the cached farm. Entries written under another
// schema version count as misses and are evicted.
func (c *farmCache) Get(id string) (domain.Farm, bool) {
	entry, found := c.lru.Get(id)
	if found && entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		found = false
	}

	if !found {
		c.misses.Add(1)
		metrics.StateCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return domain.Farm{}, false
	}

	c.hits.Add(1)
	metrics.StateCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	return entry.Farm, true
}

func (c *farmCache) Set(f domain.Farm) {
	c.lru.Add(f.ID, &cachedFarmEntry{
		Version:  CacheSchemaVersion,
		Farm:     f,
		CachedAt: time.Now(),
	})
}

func (c *farmCache) Invalidate(id string) {
	c.lru.Remove(id)
}

func (c *farmCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
