package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// news service.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec   // labels: transport={webhook,vector}, outcome={success,error,unusable}
	UpstreamDuration *prometheus.HistogramVec // labels: transport={webhook,vector}
	FallbackServed   prometheus.Counter
	CacheLookups     *prometheus.CounterVec // labels: result={fresh,stale,miss}
	ItemsNormalized  prometheus.Counter
	ItemsDropped     prometheus.Counter
	SearchRequests   *prometheus.CounterVec // labels: result={matched,defaulted}
	RefreshRunning   prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "techradar",
			Name:      "upstream_requests_total",
			Help:      "Upstream fetch attempts by transport and outcome.",
		}, []string{"transport", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "techradar",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"transport"}),
		FallbackServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "techradar",
			Name:      "fallback_served_total",
			Help:      "Times demo data was substituted for an unusable upstream.",
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "techradar",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by freshness result.",
		}, []string{"result"}),
		ItemsNormalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "techradar",
			Name:      "items_normalized_total",
			Help:      "News items successfully normalized.",
		}),
		ItemsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "techradar",
			Name:      "items_dropped_total",
			Help:      "Upstream elements dropped during normalization.",
		}),
		SearchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "techradar",
			Name:      "search_requests_total",
			Help:      "Search calls by whether the query matched or defaulted.",
		}, []string{"result"}),
		RefreshRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "techradar",
			Name:      "refresh_running",
			Help:      "1 while the background refresh loop is active.",
		}),
	}

	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.FallbackServed,
		m.CacheLookups,
		m.ItemsNormalized,
		m.ItemsDropped,
		m.SearchRequests,
		m.RefreshRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "techradar", Name: "upstream_requests_total"}, []string{"transport", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "techradar", Name: "upstream_request_duration_seconds"}, []string{"transport"}),
		FallbackServed:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "techradar", Name: "fallback_served_total"}),
		CacheLookups:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "techradar", Name: "cache_lookups_total"}, []string{"result"}),
		ItemsNormalized:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "techradar", Name: "items_normalized_total"}),
		ItemsDropped:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "techradar", Name: "items_dropped_total"}),
		SearchRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "techradar", Name: "search_requests_total"}, []string{"result"}),
		RefreshRunning:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "techradar", Name: "refresh_running"}),
	}
}
