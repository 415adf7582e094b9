package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// aggregation pipeline and the chart renderer.
type Metrics struct {
	RowsLoaded     prometheus.Counter
	RowsSkipped    prometheus.Counter
	SummariesBuilt prometheus.Gauge
	DatasetLoaded  prometheus.Gauge
	LoadDuration   prometheus.Histogram

	// Rendering metrics.
	Renders        *prometheus.CounterVec // labels: mode={max,min}
	RenderDuration prometheus.Histogram
	DisplayMode    prometheus.Gauge // 1 when showing maxima, 0 when showing minima
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "temp_matrix",
			Name:      "rows_loaded_total",
			Help:      "Total CSV rows successfully parsed into daily records.",
		}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "temp_matrix",
			Name:      "rows_skipped_total",
			Help:      "Total malformed CSV rows skipped during loading.",
		}),
		SummariesBuilt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "temp_matrix",
			Name:      "summaries_built",
			Help:      "Number of monthly summaries produced by the last aggregation run.",
		}),
		DatasetLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "temp_matrix",
			Name:      "dataset_loaded",
			Help:      "1 once the dataset has been loaded and aggregated.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "temp_matrix",
			Name:      "load_duration_seconds",
			Help:      "Duration of the load-and-aggregate batch.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "temp_matrix",
			Name:      "renders_total",
			Help:      "Chart renders served, by display mode.",
		}, []string{"mode"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "temp_matrix",
			Name:      "render_duration_seconds",
			Help:      "Duration of chart rendering and PNG encoding.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		DisplayMode: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "temp_matrix",
			Name:      "display_mode_max",
			Help:      "1 when cells are colored by average maxima, 0 for minima.",
		}),
	}

	prometheus.MustRegister(
		m.RowsLoaded,
		m.RowsSkipped,
		m.SummariesBuilt,
		m.DatasetLoaded,
		m.LoadDuration,
		m.Renders,
		m.RenderDuration,
		m.DisplayMode,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsLoaded:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "temp_matrix", Name: "rows_loaded_total"}),
		RowsSkipped:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "temp_matrix", Name: "rows_skipped_total"}),
		SummariesBuilt: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "temp_matrix", Name: "summaries_built"}),
		DatasetLoaded:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "temp_matrix", Name: "dataset_loaded"}),
		LoadDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "temp_matrix", Name: "load_duration_seconds"}),
		Renders:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "temp_matrix", Name: "renders_total"}, []string{"mode"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "temp_matrix", Name: "render_duration_seconds"}),
		DisplayMode:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "temp_matrix", Name: "display_mode_max"}),
	}
}
