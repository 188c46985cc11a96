// Package forward implements the forwarding decision engine: it turns a
// parsed IP header plus a FIB resolution into a verdict and the matching
// header rewrites.
package forward

import (
	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/core/rewrite"
)

// Resolver resolves a route lookup key against a forwarding information base.
// Implementations must be non-blocking and safe for concurrent use; one call
// happens per forwarded packet on the hot path.
type Resolver interface {
	Resolve(key core.RouteLookupKey) core.Outcome
}

// Engine maps FIB outcomes to verdicts. The mapping is total: every outcome
// code yields exactly one verdict.
type Engine struct {
	fib Resolver
}

// NewEngine returns an engine backed by the given resolver.
func NewEngine(fib Resolver) *Engine {
	return &Engine{fib: fib}
}

// ForwardIPv4 decides the fate of an IPv4 packet. A TTL of 1 or less yields
// Pass before the resolver is consulted: the packet would be discarded
// downstream anyway and belongs to the normal stack, not to us.
func (e *Engine) ForwardIPv4(b *packet.Buffer, hdr *core.IPv4Header, ingress int) core.Verdict {
	if hdr.TTL <= 1 {
		return core.Pass()
	}

	key := core.RouteLookupKey{
		Family:   core.FamilyIPv4,
		TOS:      hdr.TOS,
		Protocol: hdr.Protocol,
		TotalLen: hdr.TotalLen,
		SrcIP:    hdr.SrcIP,
		DstIP:    hdr.DstIP,
		Ingress:  ingress,
	}

	outcome := e.fib.Resolve(key)
	if outcome.Code != core.OutcomeSuccess {
		return mapFailure(outcome.Code)
	}
	if err := rewrite.DecrementTTL(b, hdr); err != nil {
		return core.Pass()
	}
	if err := rewrite.SetMACs(b, outcome.SrcMAC, outcome.DstMAC); err != nil {
		return core.Pass()
	}
	return core.Redirect(outcome.Ifindex)
}

// ForwardIPv6 decides the fate of an IPv6 packet, mirroring ForwardIPv4 with
// hop limit in place of TTL.
func (e *Engine) ForwardIPv6(b *packet.Buffer, hdr *core.IPv6Header, ingress int) core.Verdict {
	if hdr.HopLimit <= 1 {
		return core.Pass()
	}

	key := core.RouteLookupKey{
		Family:   core.FamilyIPv6,
		FlowInfo: hdr.FlowInfo,
		Protocol: hdr.NextHeader,
		TotalLen: hdr.PayloadLen,
		SrcIP:    hdr.SrcIP,
		DstIP:    hdr.DstIP,
		Ingress:  ingress,
	}

	outcome := e.fib.Resolve(key)
	if outcome.Code != core.OutcomeSuccess {
		return mapFailure(outcome.Code)
	}
	if err := rewrite.DecrementHopLimit(b, hdr); err != nil {
		return core.Pass()
	}
	if err := rewrite.SetMACs(b, outcome.SrcMAC, outcome.DstMAC); err != nil {
		return core.Pass()
	}
	return core.Redirect(outcome.Ifindex)
}

// mapFailure is the non-success half of the outcome-to-verdict mapping.
// Destinations that are blackholed, unreachable or prohibited can be dropped
// right here; everything else goes back to the normal stack.
func mapFailure(code core.OutcomeCode) core.Verdict {
	switch code {
	case core.OutcomeBlackhole, core.OutcomeUnreachable, core.OutcomeProhibited:
		return core.Drop()
	case core.OutcomeNotForwarded, core.OutcomeForwardingDisabled,
		core.OutcomeUnsupportedEncap, core.OutcomeNoNeighbor,
		core.OutcomeFragmentationNeeded:
		return core.Pass()
	}
	return core.Pass()
}
