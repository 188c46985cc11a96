// Package dispatch hands each packet's final verdict to the statistics
// collector.
package dispatch

import "firestige.xyz/strix/internal/core"

// Recorder receives exactly one action per processed packet. Implementations
// must support concurrent increments without external synchronization.
type Recorder interface {
	Record(action core.Action)
}

// Dispatcher maps a verdict to its action and reports it. It is the single
// point at which per-packet accounting happens.
type Dispatcher struct {
	rec Recorder
}

// NewDispatcher returns a dispatcher reporting to rec.
func NewDispatcher(rec Recorder) *Dispatcher {
	return &Dispatcher{rec: rec}
}

// Dispatch records the verdict's action and returns the verdict unchanged, so
// callers can dispatch and act in one expression.
func (d *Dispatcher) Dispatch(v core.Verdict) core.Verdict {
	d.rec.Record(v.Action)
	return v
}
