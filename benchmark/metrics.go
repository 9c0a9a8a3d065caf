// SPDX-License-Identifier: MIT

package benchmark

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/chainsort/chain"
	"github.com/katalvlaran/chainsort/pairsort"
)

// durationBuckets span 1µs to roughly 4s.
var durationBuckets = prometheus.ExponentialBuckets(1e-6, 4, 12)

// Metrics holds the Prometheus collectors fed by Run. A nil *Metrics is a no-op.
type Metrics struct {
	generation *prometheus.HistogramVec
	sorting    *prometheus.HistogramVec
	records    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		generation: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chainsort_generation_seconds",
			Help:    "Chain generation duration per batch",
			Buckets: durationBuckets,
		}, []string{"path"}),
		sorting: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chainsort_sort_seconds",
			Help:    "Paired sort duration",
			Buckets: durationBuckets,
		}, []string{"algorithm", "path"}),
		records: f.NewCounterVec(prometheus.CounterOpts{
			Name: "chainsort_records_total",
			Help: "Benchmark records produced by algorithm",
		}, []string{"algorithm"}),
	}
}

func (m *Metrics) observeGeneration(p chain.Path, d time.Duration) {
	if m == nil {
		return
	}
	m.generation.WithLabelValues(p.String()).Observe(d.Seconds())
}

func (m *Metrics) observeSort(a pairsort.Algorithm, p chain.Path, d time.Duration) {
	if m == nil {
		return
	}
	m.sorting.WithLabelValues(a.String(), p.String()).Observe(d.Seconds())
	m.records.WithLabelValues(a.String()).Inc()
}
