// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package harness

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "iplookup"

// Metrics records run outcomes per engine. A nil *Metrics records nothing.
type Metrics struct {
	lookups   *prometheus.CounterVec
	routes    *prometheus.GaugeVec
	benchmark *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Number of reported lookups by engine and result",
		}, []string{"engine", "result"}),
		routes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "routes",
			Help:      "Number of distinct routes loaded into the engine",
		}, []string{"engine"}),
		benchmark: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "benchmark_seconds",
			Help:      "Duration of the last timed lookup run",
		}, []string{"engine"}),
	}
	reg.MustRegister(m.lookups, m.routes, m.benchmark)
	return m
}

func (m *Metrics) observeRoutes(engine string, n int) {
	if m == nil {
		return
	}
	m.routes.WithLabelValues(engine).Set(float64(n))
}

func (m *Metrics) observeBenchmark(engine string, d time.Duration) {
	if m == nil {
		return
	}
	m.benchmark.WithLabelValues(engine).Set(d.Seconds())
}

func (m *Metrics) observeResults(engine string, results []Result) {
	if m == nil {
		return
	}
	var found int
	for _, r := range results {
		if r.Found {
			found++
		}
	}
	m.lookups.WithLabelValues(engine, "found").Add(float64(found))
	m.lookups.WithLabelValues(engine, "not_found").Add(float64(len(results) - found))
}
