// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package pipeline

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus instruments exported while a pipeline
// runs. The zero value is not usable; construct with NewMetrics.
type Metrics struct {
	TicksProcessed       prometheus.Counter
	ParseErrors          prometheus.Counter
	SymbolCacheEvictions prometheus.Counter
	QueueDepth           prometheus.Gauge
}

// NewMetrics constructs the pipeline's instruments. It does not
// register them; call Register to do so against a registerer.
func NewMetrics() *Metrics {
	return &Metrics{
		TicksProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ticks_processed_total",
			Help: "Total number of tick records consumed from the input stream.",
		}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parse_errors_total",
			Help: "Total number of times parsing the input stream failed.",
		}),
		SymbolCacheEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "symbol_cache_evictions_total",
			Help: "Total number of symbols evicted from the bounded symbol cache.",
		}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "queue_depth",
			Help: "Number of unconsumed chunks currently buffered between producer and consumer.",
		}),
	}
}

// Register registers every instrument against reg.
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.TicksProcessed, m.ParseErrors, m.SymbolCacheEvictions, m.QueueDepth)
}
