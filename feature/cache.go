package feature

import (
	"errors"

	"github.com/dgraph-io/ristretto"

	"github.com/katalvlaran/resoname/corpus"
)

// Cache sizing defaults. One Vector costs 1; corpora are small relative to
// typical cache capacities, so the defaults comfortably hold several runs.
const (
	defaultNumCounters = 1e5 // admission-policy counters (~10× expected items)
	defaultMaxItems    = 1e4 // maximum cached vectors
	defaultBufferItems = 64  // ristretto async write buffer
)

// ErrCacheClosed indicates use of a Cache after Close.
var ErrCacheClosed = errors.New("feature: cache is closed")

// Cache is an optional cross-run vector cache backed by ristretto.
//
// A single analysis run does not need it — Precompute already guarantees
// one extraction per entity — but callers that analyze many overlapping
// corpora (sliding windows over the same store) can share one Cache across
// runs to skip re-extraction.
//
// Safe for concurrent use.
type Cache struct {
	cache  *ristretto.Cache
	closed bool
}

// CacheConfig tunes the underlying ristretto cache. Zero fields fall back
// to the package defaults.
type CacheConfig struct {
	NumCounters int64
	MaxItems    int64
	BufferItems int64
}

// NewCache creates a vector Cache. A nil config means all defaults.
func NewCache(config *CacheConfig) (*Cache, error) {
	cfg := CacheConfig{
		NumCounters: defaultNumCounters,
		MaxItems:    defaultMaxItems,
		BufferItems: defaultBufferItems,
	}
	if config != nil {
		if config.NumCounters > 0 {
			cfg.NumCounters = config.NumCounters
		}
		if config.MaxItems > 0 {
			cfg.MaxItems = config.MaxItems
		}
		if config.BufferItems > 0 {
			cfg.BufferItems = config.BufferItems
		}
	}

	rc, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxItems,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{cache: rc}, nil
}

// Vector returns the cached Vector for e, extracting and admitting it on a
// miss. Extraction is pure, so a raced double-extract is harmless.
func (c *Cache) Vector(e corpus.Entity) (Vector, error) {
	if c.closed {
		return Vector{}, ErrCacheClosed
	}
	if raw, ok := c.cache.Get(e.ID); ok {
		if v, ok := raw.(Vector); ok {
			return v, nil
		}
	}
	v := Extract(e)
	c.cache.Set(e.ID, v, 1)
	return v, nil
}

// Precompute fills a per-run vector map like the package-level Precompute,
// but consults (and warms) the cache for every entity.
func (c *Cache) Precompute(entities []corpus.Entity) (map[string]Vector, error) {
	if c.closed {
		return nil, ErrCacheClosed
	}
	vectors := make(map[string]Vector, len(entities))
	for _, e := range entities {
		v, err := c.Vector(e)
		if err != nil {
			return nil, err
		}
		vectors[e.ID] = v
	}
	return vectors, nil
}

// Close releases the underlying ristretto resources. The Cache is unusable
// afterwards.
func (c *Cache) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.cache.Close()
}
