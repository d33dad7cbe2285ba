// SPDX-License-Identifier: MIT

// Package metrics exposes backtest runs as Prometheus collectors.
//
// A Recorder owns a private registry, so several runs in one process never
// collide with each other or with the default registry. It implements
// backtest.Observer; attach it with backtest.WithObserver and export with
// WriteTextfile for the node_exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridcover/backtest"
)

// Namespace prefixes every metric name.
const Namespace = "gridcover"

// hitBuckets covers 0..20 hits for a 20-number candidate list.
var hitBuckets = prometheus.LinearBuckets(0, 1, 21)

// Recorder collects backtest metrics.
type Recorder struct {
	registry *prometheus.Registry

	weeks    prometheus.Counter
	outcomes *prometheus.CounterVec
	hits     *prometheus.HistogramVec
	success  *prometheus.GaugeVec
	avgHits  *prometheus.GaugeVec
	highRate *prometheus.GaugeVec
}

// NewRecorder returns a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		weeks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "backtest",
			Name:      "weeks_total",
			Help:      "Total simulated backtest weeks.",
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "backtest",
			Name:      "outcomes_total",
			Help:      "Head to head weeks by result of the grid strategy (win, loss, tie).",
		}, []string{"result"}),
		hits: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "backtest",
			Name:      "hits",
			Help:      "Hits per simulated week by strategy.",
			Buckets:   hitBuckets,
		}, []string{"strategy"}),
		success: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "backtest",
			Name:      "success_ratio",
			Help:      "Share of weeks (0.0 to 1.0) reaching the success hit threshold, by strategy.",
		}, []string{"strategy"}),
		avgHits: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "backtest",
			Name:      "avg_hits",
			Help:      "Mean hits per week of the last run, by strategy.",
		}, []string{"strategy"}),
		highRate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "backtest",
			Name:      "high_hit_ratio",
			Help:      "Share of weeks (0.0 to 1.0) reaching the high hit threshold, by strategy.",
		}, []string{"strategy"}),
	}
	r.registry.MustRegister(r.weeks, r.outcomes, r.hits, r.success, r.avgHits, r.highRate)
	return r
}

// Registry returns the private registry, e.g. for a promhttp handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveWeek implements backtest.Observer.
func (r *Recorder) ObserveWeek(rec backtest.Record) {
	if r == nil {
		return
	}
	r.weeks.Inc()
	r.hits.WithLabelValues(rec.Grid.Strategy).Observe(float64(rec.Grid.Hits))
	r.hits.WithLabelValues(rec.Baseline.Strategy).Observe(float64(rec.Baseline.Hits))
	switch {
	case rec.Grid.Hits > rec.Baseline.Hits:
		r.outcomes.WithLabelValues("win").Inc()
	case rec.Grid.Hits < rec.Baseline.Hits:
		r.outcomes.WithLabelValues("loss").Inc()
	default:
		r.outcomes.WithLabelValues("tie").Inc()
	}
}

// ObserveSummary implements backtest.Observer.
func (r *Recorder) ObserveSummary(s backtest.Summary) {
	if r == nil {
		return
	}
	for _, st := range []backtest.StrategyStats{s.Grid, s.Baseline} {
		r.success.WithLabelValues(st.Name).Set(st.SuccessRate / 100)
		r.avgHits.WithLabelValues(st.Name).Set(st.AvgHits)
		r.highRate.WithLabelValues(st.Name).Set(st.HighRate / 100)
	}
}

// WriteTextfile writes the current state in the text exposition format,
// atomically replacing path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}

var _ backtest.Observer = (*Recorder)(nil)
