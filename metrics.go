package wcmp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the registry's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "wcmp").
	Namespace string

	// Subsystem is the metrics subsystem (default: "definitions").
	Subsystem string

	// Buckets are the histogram buckets for build duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registerer to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "wcmp",
		Subsystem: "definitions",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the definition cache metrics.
type Metrics struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	builds        prometheus.Counter
	failures      *prometheus.CounterVec
	buildDuration prometheus.Histogram
}

// NewMetrics creates and registers the cache metrics.
func NewMetrics(config MetricsConfig) *Metrics {
	def := defaultMetricsConfig()
	if config.Namespace == "" {
		config.Namespace = def.Namespace
	}
	if config.Subsystem == "" {
		config.Subsystem = def.Subsystem
	}
	if config.Buckets == nil {
		config.Buckets = def.Buckets
	}
	if config.Registry == nil {
		config.Registry = def.Registry
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "cache_hits_total",
			Help:      "Definition lookups served from the cache",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "cache_misses_total",
			Help:      "Definition lookups that required a build",
		}),
		builds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "builds_total",
			Help:      "Component definitions built",
		}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "build_failures_total",
			Help:      "Failed definition builds by error kind",
		}, []string{"kind"}),
		buildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "build_duration_seconds",
			Help:      "Time spent building a definition, ancestors included",
			Buckets:   config.Buckets,
		}),
	}
}

func (m *Metrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *Metrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *Metrics) built(seconds float64) {
	if m != nil {
		m.builds.Inc()
		m.buildDuration.Observe(seconds)
	}
}

func (m *Metrics) failed(err error) {
	if m != nil {
		m.failures.WithLabelValues(errorKind(err)).Inc()
	}
}

func errorKind(err error) string {
	switch {
	case IsNotComponent(err):
		return "not_component"
	case IsAncestryError(err):
		return "ancestry"
	default:
		return "decorator"
	}
}
