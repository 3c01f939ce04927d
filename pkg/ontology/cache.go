package ontology

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/dd0wney/cluso-ontology/pkg/metrics"
)

// resultCache memoizes query results. Concurrent misses for the same key
// share one resolution.
type resultCache struct {
	enabled bool
	entries sync.Map // cacheKey -> Result
	flight  singleflight.Group
	metrics *metrics.Registry

	size        atomic.Int64
	hits        atomic.Uint64
	misses      atomic.Uint64
	resolutions atomic.Uint64
}

// CacheStats reports cache activity since the graph was built or the cache
// was last cleared.
type CacheStats struct {
	Entries     int
	Hits        uint64
	Misses      uint64
	Resolutions uint64
}

func newResultCache(enabled bool, reg *metrics.Registry) *resultCache {
	return &resultCache{enabled: enabled, metrics: reg}
}

func (c *resultCache) get(k Key, resolve func(Key) Result) Result {
	if !c.enabled {
		c.resolutions.Add(1)
		return resolve(k)
	}

	ck := k.cacheKey()
	if v, ok := c.entries.Load(ck); ok {
		c.record(true)
		return v.(Result)
	}
	c.record(false)

	v, _, _ := c.flight.Do(ck, func() (any, error) {
		if v, ok := c.entries.Load(ck); ok {
			return v, nil
		}
		c.resolutions.Add(1)
		r := resolve(k)
		c.entries.Store(ck, r)
		n := c.size.Add(1)
		if c.metrics != nil {
			c.metrics.SetCacheEntries(int(n))
		}
		return r, nil
	})
	return v.(Result)
}

func (c *resultCache) record(hit bool) {
	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	if c.metrics != nil {
		c.metrics.RecordCacheLookup(hit)
	}
}

func (c *resultCache) clear() {
	c.entries.Range(func(k, _ any) bool {
		c.entries.Delete(k)
		return true
	})
	c.size.Store(0)
	c.hits.Store(0)
	c.misses.Store(0)
	c.resolutions.Store(0)
	if c.metrics != nil {
		c.metrics.SetCacheEntries(0)
	}
}

func (c *resultCache) stats() CacheStats {
	return CacheStats{
		Entries:     int(c.size.Load()),
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Resolutions: c.resolutions.Load(),
	}
}

// CacheStats returns query cache counters.
func (g *Graph) CacheStats() CacheStats { return g.cache.stats() }

// ClearCache drops every memoized result.
func (g *Graph) ClearCache() { g.cache.clear() }
