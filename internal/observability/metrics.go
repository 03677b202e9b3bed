package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the oil
// export pipeline.
type Metrics struct {
	OilsListed         prometheus.Counter
	SnapshotsPublished prometheus.Counter
	TransformErrors    prometheus.Counter
	PipelineRunning    prometheus.Gauge

	// Skip reasons.
	OilsUnsuitable prometheus.Counter
	OilsGeneric    prometheus.Counter

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// ADIOS API metrics.
	FetchRequests    *prometheus.CounterVec   // labels: endpoint={list,oil}, outcome={success,error}
	FetchAPIDuration *prometheus.HistogramVec // labels: endpoint={list,oil}
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		OilsListed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adios_etl",
			Name:      "oils_listed_total",
			Help:      "Total listing entries read from the ADIOS database.",
		}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adios_etl",
			Name:      "snapshots_published_total",
			Help:      "Total oil snapshots written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adios_etl",
			Name:      "transform_errors_total",
			Help:      "Total fetch or conversion failures.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "adios_etl",
			Name:      "pipeline_running",
			Help:      "1 while the export pipeline is active, 0 when finished or shut down.",
		}),
		OilsUnsuitable: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adios_etl",
			Name:      "oils_unsuitable_total",
			Help:      "Oils skipped because the record is not GNOME suitable.",
		}),
		OilsGeneric: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adios_etl",
			Name:      "oils_generic_total",
			Help:      "Synthetic GENERIC oils excluded from the export.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "adios_etl",
			Name:      "batch_size",
			Help:      "Number of listing entries per extracted page.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "adios_etl",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete list-fetch-publish cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adios_etl",
			Name:      "fetch_requests_total",
			Help:      "ADIOS API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		FetchAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "adios_etl",
			Name:      "fetch_api_duration_seconds",
			Help:      "ADIOS API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"endpoint"}),
	}

	prometheus.MustRegister(
		m.OilsListed,
		m.SnapshotsPublished,
		m.TransformErrors,
		m.PipelineRunning,
		m.OilsUnsuitable,
		m.OilsGeneric,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.FetchRequests,
		m.FetchAPIDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		OilsListed:              prometheus.NewCounter(prometheus.CounterOpts{Namespace: "adios_etl", Name: "oils_listed_total"}),
		SnapshotsPublished:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "adios_etl", Name: "snapshots_published_total"}),
		TransformErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "adios_etl", Name: "transform_errors_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "adios_etl", Name: "pipeline_running"}),
		OilsUnsuitable:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "adios_etl", Name: "oils_unsuitable_total"}),
		OilsGeneric:             prometheus.NewCounter(prometheus.CounterOpts{Namespace: "adios_etl", Name: "oils_generic_total"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "adios_etl", Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "adios_etl", Name: "batch_processing_duration_seconds"}),
		FetchRequests:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "adios_etl", Name: "fetch_requests_total"}, []string{"endpoint", "outcome"}),
		FetchAPIDuration:        prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "adios_etl", Name: "fetch_api_duration_seconds"}, []string{"endpoint"}),
	}
}
