package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for rendering and ingestion.
type Metrics struct {
	Renders        *prometheus.CounterVec // labels: kind={svg,json,legend,inline}
	RenderErrors   *prometheus.CounterVec // labels: kind
	RenderDuration prometheus.Histogram
	CellsRendered  prometheus.Histogram
	CountsIngested prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "commit_heatmap",
			Name:      "renders_total",
			Help:      "Total heatmap renders by kind.",
		}, []string{"kind"}),
		RenderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "commit_heatmap",
			Name:      "render_errors_total",
			Help:      "Total failed heatmap renders by kind.",
		}, []string{"kind"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "commit_heatmap",
			Name:      "render_duration_seconds",
			Help:      "Duration of loading a series and building its surface.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		CellsRendered: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "commit_heatmap",
			Name:      "cells_rendered",
			Help:      "Number of day marks per render.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
		}),
		CountsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "commit_heatmap",
			Name:      "counts_ingested_total",
			Help:      "Total daily counts written.",
		}),
	}

	reg.MustRegister(m.Renders, m.RenderErrors, m.RenderDuration, m.CellsRendered, m.CountsIngested)
	return m
}
