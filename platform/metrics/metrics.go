// Package metrics holds the Prometheus collectors for the lookup pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	Classifications  *prometheus.CounterVec
	EnrichmentErrors *prometheus.CounterVec
	StaleDiscards    prometheus.Counter
	LookupDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "idscope_classifications_total",
			Help: "Raw IDs classified, by detected country (Unknown for format mismatches)",
		}, []string{"country"}),
		EnrichmentErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "idscope_enrichment_failures_total",
			Help: "Country metadata lookups that failed",
		}, []string{"country"}),
		StaleDiscards: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "idscope_stale_results_discarded_total",
			Help: "Pipeline results dropped because a newer lookup started on the same view",
		}),
		LookupDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idscope_lookup_duration_seconds",
			Help:    "End-to-end pipeline duration by outcome",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.Classifications, m.EnrichmentErrors, m.StaleDiscards, m.LookupDuration)
	return m
}

// IncClassification counts one classification for country
func (m *Metrics) IncClassification(country string) {
	m.Classifications.WithLabelValues(country).Inc()
}

// IncEnrichmentFailure counts one failed enrichment for country
func (m *Metrics) IncEnrichmentFailure(country string) {
	m.EnrichmentErrors.WithLabelValues(country).Inc()
}

// IncStaleDiscard counts one superseded pipeline result
func (m *Metrics) IncStaleDiscard() {
	m.StaleDiscards.Inc()
}

// ObserveLookup records a pipeline duration in seconds
func (m *Metrics) ObserveLookup(outcome string, seconds float64) {
	m.LookupDuration.WithLabelValues(outcome).Observe(seconds)
}
