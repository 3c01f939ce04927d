package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ontology_queries_total",
			Help: "Total number of tagged queries resolved",
		},
		[]string{"kind", "outcome"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ontology_query_duration_seconds",
			Help:    "Uncached query resolution duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"kind"},
	)

	r.QueryResultSize = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ontology_query_result_concepts",
			Help:    "Number of concepts returned per resolved query",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 1000},
		},
		[]string{"kind"},
	)

	r.CacheHitsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ontology_query_cache_hits_total",
			Help: "Queries answered from the result cache",
		},
	)

	r.CacheMissesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ontology_query_cache_misses_total",
			Help: "Queries that required resolution",
		},
	)

	r.CacheEntries = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ontology_query_cache_entries",
			Help: "Number of cached query results",
		},
	)

	r.ClosureVisits = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ontology_sense_closure_visits",
			Help:    "Sense-graph nodes visited per closure traversal",
			Buckets: []float64{1, 2, 5, 10, 50, 100, 1000},
		},
		[]string{"direction"},
	)
}
