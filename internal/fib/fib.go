// Package fib implements a static forwarding information base: a
// longest-prefix-match table over config-declared routes, resolving a
// destination to either an egress interface plus next-hop MACs or a
// non-success outcome.
package fib

import (
	"fmt"
	"net/netip"
	"sync"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/metrics"
)

// Route is one FIB entry. For OutcomeSuccess routes, Ifindex names the
// logical device-map index of the egress and the MACs the rewritten link
// layer addresses; for any other outcome those fields are ignored.
type Route struct {
	Prefix  netip.Prefix
	Outcome core.OutcomeCode
	Ifindex int
	SrcMAC  core.MAC
	DstMAC  core.MAC
}

// Table is a concurrent-read FIB. Routes are installed at load time; every
// worker resolves against it without further synchronization beyond the
// read lock.
type Table struct {
	mu sync.RWMutex
	v4 []Route
	v6 []Route
}

// NewTable returns an empty table. Unmatched destinations resolve to
// OutcomeNotForwarded.
func NewTable() *Table {
	return &Table{}
}

// Add installs a route. Returns an error if the prefix is invalid.
func (t *Table) Add(r Route) error {
	if !r.Prefix.IsValid() {
		return fmt.Errorf("fib: invalid prefix %v", r.Prefix)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if r.Prefix.Addr().Is4() {
		t.v4 = append(t.v4, r)
	} else {
		t.v6 = append(t.v6, r)
	}
	return nil
}

// Len returns the number of installed routes.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.v4) + len(t.v6)
}

// Resolve implements forward.Resolver with a linear longest-prefix match over
// the destination address. Route counts here are config-sized, not
// Internet-sized, so a scan beats a trie in both code and constant factor.
func (t *Table) Resolve(key core.RouteLookupKey) core.Outcome {
	t.mu.RLock()
	defer t.mu.RUnlock()

	routes := t.v6
	if key.Family == core.FamilyIPv4 {
		routes = t.v4
	}

	best := -1
	bestBits := -1
	for i := range routes {
		if routes[i].Prefix.Contains(key.DstIP) && routes[i].Prefix.Bits() > bestBits {
			best = i
			bestBits = routes[i].Prefix.Bits()
		}
	}
	if best < 0 {
		metrics.FIBOutcomesTotal.WithLabelValues(core.OutcomeNotForwarded.String()).Inc()
		return core.Outcome{Code: core.OutcomeNotForwarded}
	}

	r := routes[best]
	metrics.FIBOutcomesTotal.WithLabelValues(r.Outcome.String()).Inc()
	return core.Outcome{
		Code:    r.Outcome,
		Ifindex: r.Ifindex,
		SrcMAC:  r.SrcMAC,
		DstMAC:  r.DstMAC,
	}
}

// ParseOutcome converts a config token into an outcome code.
func ParseOutcome(s string) (core.OutcomeCode, error) {
	switch s {
	case "success":
		return core.OutcomeSuccess, nil
	case "blackhole":
		return core.OutcomeBlackhole, nil
	case "unreachable":
		return core.OutcomeUnreachable, nil
	case "prohibited":
		return core.OutcomeProhibited, nil
	case "not_forwarded":
		return core.OutcomeNotForwarded, nil
	case "forwarding_disabled":
		return core.OutcomeForwardingDisabled, nil
	case "unsupported_encap":
		return core.OutcomeUnsupportedEncap, nil
	case "no_neighbor":
		return core.OutcomeNoNeighbor, nil
	case "fragmentation_needed":
		return core.OutcomeFragmentationNeeded, nil
	}
	return 0, fmt.Errorf("fib: unknown outcome %q", s)
}
