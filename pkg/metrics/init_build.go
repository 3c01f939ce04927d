package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initBuildMetrics() {
	r.BuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ontology_builds_total",
			Help: "Total number of ontology graph builds",
		},
		[]string{"status"},
	)

	r.BuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ontology_build_duration_seconds",
			Help:    "Ontology graph build duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
	)

	r.ConceptsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ontology_concepts",
			Help: "Number of concepts in the current graph",
		},
	)

	r.SenseKeysTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ontology_sense_keys",
			Help: "Number of indexed sense keys in the current graph",
		},
	)

	r.WordsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ontology_words",
			Help: "Number of (part-of-speech, word) pairs in the word index",
		},
	)

	r.RecordsDropped = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ontology_records_dropped_total",
			Help: "Input records excluded during construction",
		},
		[]string{"reason"},
	)
}
