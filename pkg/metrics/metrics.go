package metrics

import (
	"time"
)

// BuildStats summarizes a finished build for RecordBuild.
type BuildStats struct {
	Concepts  int
	SenseKeys int
	Words     int
	Dropped   map[string]int // reason -> count
}

// RecordBuild records a successful ontology build
func (r *Registry) RecordBuild(stats BuildStats, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.BuildsTotal.WithLabelValues("success").Inc()
	r.BuildDuration.Observe(duration.Seconds())
	r.ConceptsTotal.Set(float64(stats.Concepts))
	r.SenseKeysTotal.Set(float64(stats.SenseKeys))
	r.WordsTotal.Set(float64(stats.Words))
	for reason, n := range stats.Dropped {
		r.RecordsDropped.WithLabelValues(reason).Add(float64(n))
	}
}

// RecordBuildFailure records a build aborted by a construction error
func (r *Registry) RecordBuildFailure(duration time.Duration) {
	r.BuildsTotal.WithLabelValues("error").Inc()
	r.BuildDuration.Observe(duration.Seconds())
}

// RecordQuery records a resolved (uncached) query
func (r *Registry) RecordQuery(kind string, resultSize int, duration time.Duration) {
	outcome := "hit"
	if resultSize == 0 {
		outcome = "miss"
	}
	r.QueriesTotal.WithLabelValues(kind, outcome).Inc()
	r.QueryDuration.WithLabelValues(kind).Observe(duration.Seconds())
	r.QueryResultSize.WithLabelValues(kind).Observe(float64(resultSize))
}

// RecordCacheLookup records a cache hit or miss
func (r *Registry) RecordCacheLookup(hit bool) {
	if hit {
		r.CacheHitsTotal.Inc()
		return
	}
	r.CacheMissesTotal.Inc()
}

// SetCacheEntries sets the current cache size
func (r *Registry) SetCacheEntries(n int) {
	r.CacheEntries.Set(float64(n))
}

// RecordClosure records how many sense-graph nodes a closure visited.
// direction is "up" (broader terms) or "down" (narrower terms).
func (r *Registry) RecordClosure(direction string, visited int) {
	r.ClosureVisits.WithLabelValues(direction).Observe(float64(visited))
}
