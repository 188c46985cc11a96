package core

// OutcomeCode classifies the result of a FIB resolution. The set mirrors the
// kernel's fib lookup return codes one for one; the forwarding engine must map
// every member to a verdict.
type OutcomeCode int

const (
	// OutcomeSuccess resolved an egress interface and next-hop addresses.
	OutcomeSuccess OutcomeCode = iota
	// OutcomeBlackhole means the destination is blackholed.
	OutcomeBlackhole
	// OutcomeUnreachable means the destination is unreachable.
	OutcomeUnreachable
	// OutcomeProhibited means the destination is administratively prohibited.
	OutcomeProhibited
	// OutcomeNotForwarded means the packet is not to be forwarded.
	OutcomeNotForwarded
	// OutcomeForwardingDisabled means forwarding is off on the ingress device.
	OutcomeForwardingDisabled
	// OutcomeUnsupportedEncap means forwarding would require encapsulation.
	OutcomeUnsupportedEncap
	// OutcomeNoNeighbor means there is no neighbor entry for the next hop.
	OutcomeNoNeighbor
	// OutcomeFragmentationNeeded means the packet exceeds the egress MTU.
	OutcomeFragmentationNeeded
)

func (c OutcomeCode) String() string {
	switch c {
	case OutcomeSuccess:
		return "success"
	case OutcomeBlackhole:
		return "blackhole"
	case OutcomeUnreachable:
		return "unreachable"
	case OutcomeProhibited:
		return "prohibited"
	case OutcomeNotForwarded:
		return "not_forwarded"
	case OutcomeForwardingDisabled:
		return "forwarding_disabled"
	case OutcomeUnsupportedEncap:
		return "unsupported_encap"
	case OutcomeNoNeighbor:
		return "no_neighbor"
	case OutcomeFragmentationNeeded:
		return "fragmentation_needed"
	}
	return "unknown"
}

// Outcome is the tagged result of a FIB resolution. Ifindex and the MACs are
// only meaningful when Code is OutcomeSuccess.
type Outcome struct {
	Code    OutcomeCode
	Ifindex int
	SrcMAC  MAC
	DstMAC  MAC
}
