// Package telemetry exposes optional Prometheus instrumentation for the
// simulation core. It is a read-only observability surface, analogous to
// the arena's read interface for bots/bullets: nothing here drives
// simulation behavior, and registering a sink is entirely optional.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ArenaMetrics holds the gauges and counters a running Arena reports after
// each tick. Bounded cardinality throughout (no per-bot labels), matching
// the teacher's DoS-conscious metric design.
type ArenaMetrics struct {
	ticksProcessed prometheus.Counter
	botsAlive      prometheus.Gauge
	bulletsInFlight prometheus.Gauge
	botFaults      *prometheus.CounterVec
}

// NewArenaMetrics creates a metric set and registers it with reg. Passing a
// fresh *prometheus.Registry per arena instance (rather than the global
// default registry) keeps multiple arenas in a test suite from colliding
// on metric names.
func NewArenaMetrics(reg *prometheus.Registry) *ArenaMetrics {
	factory := promauto.With(reg)
	m := &ArenaMetrics{
		ticksProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "arena_ticks_processed_total",
			Help: "Total number of Arena.Tick calls completed.",
		}),
		botsAlive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "arena_bots_alive",
			Help: "Number of bots currently alive in the arena.",
		}),
		bulletsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "arena_bullets_in_flight",
			Help: "Number of bullets currently in flight.",
		}),
		botFaults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_bot_faults_total",
			Help: "Total bot-fatal faults, partitioned by kind.",
		}, []string{"kind"}), // kind is one of a small fixed enum, bounded cardinality
	}
	return m
}

// Observe records one tick's worth of gauges. Called once per Arena.Tick.
func (m *ArenaMetrics) Observe(botsAlive, bulletsInFlight int64) {
	if m == nil {
		return
	}
	m.ticksProcessed.Inc()
	m.botsAlive.Set(float64(botsAlive))
	m.bulletsInFlight.Set(float64(bulletsInFlight))
}

// RecordFault increments the fault counter for the given kind label. kind
// should be the String() form of sim.FaultKind; telemetry doesn't import
// the sim package to avoid a dependency cycle (sim imports telemetry for
// metric wiring), so callers pass the label directly.
func (m *ArenaMetrics) RecordFault(kind string) {
	if m == nil {
		return
	}
	m.botFaults.WithLabelValues(kind).Inc()
}
