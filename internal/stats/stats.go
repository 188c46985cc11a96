// Package stats implements the per-verdict statistics collector.
package stats

import (
	"sync/atomic"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/metrics"
)

// Collector counts verdicts by action. Increments are atomic so all capture
// workers share one collector without locking. Each count is mirrored into
// the Prometheus verdict counter.
type Collector struct {
	counters [core.NumActions]atomic.Uint64
}

// NewCollector returns a zeroed collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record implements dispatch.Recorder.
func (c *Collector) Record(action core.Action) {
	if int(action) < core.NumActions {
		c.counters[action].Add(1)
	}
	metrics.VerdictsTotal.WithLabelValues(action.String()).Inc()
}

// Count returns the number of packets that ended with the given action.
func (c *Collector) Count(action core.Action) uint64 {
	if int(action) >= core.NumActions {
		return 0
	}
	return c.counters[action].Load()
}

// Snapshot returns the current counts keyed by action name.
func (c *Collector) Snapshot() map[string]uint64 {
	snap := make(map[string]uint64, core.NumActions)
	for a := 0; a < core.NumActions; a++ {
		snap[core.Action(a).String()] = c.counters[a].Load()
	}
	return snap
}
