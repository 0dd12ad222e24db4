package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

func TestCacheInvalidation(t *testing.T) {
	cache := newFarmCache(CacheConfig{Size: 10, TTL: time.Minute})

	f := domain.Farm{ID: "farm-1", Version: 3}
	cache.Set(f)

	got, found := cache.Get("farm-1")
	assert.True(t, found)
	assert.Equal(t, f, got)

	cache.Invalidate("farm-1")

	_, found = cache.Get("farm-1")
	assert.False(t, found)
}

func TestCacheSchemaMismatchEvicts(t *testing.T) {
	cache := newFarmCache(CacheConfig{Size: 10, TTL: time.Minute})
	cache.lru.Add("farm-1", &cachedFarmEntry{Version: "0.9", Farm: domain.Farm{ID: "farm-1"}})

	_, found := cache.Get("farm-1")
	assert.False(t, found)
	assert.Equal(t, 0, cache.GetStats().Size)
}

func TestCacheStats(t *testing.T) {
	cache := newFarmCache(CacheConfig{Size: 10, TTL: time.Minute})

	stats := cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)

	cache.Get("farm-1")
	cache.Set(domain.Farm{ID: "farm-1"})
	cache.Get("farm-1")

	stats = cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCacheConfig(t *testing.T) {
	cfg := DefaultCacheConfig()
	assert.Equal(t, DefaultCacheSize, cfg.Size)
	assert.Equal(t, DefaultCacheTTL, cfg.TTL)

	// non-positive sizes fall back to the default instead of panicking
	cache := newFarmCache(CacheConfig{Size: 0, TTL: time.Minute})
	cache.Set(domain.Farm{ID: "farm-1"})
	assert.Equal(t, 1, cache.GetStats().Size)
}
