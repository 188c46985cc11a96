package program

import (
	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/core/parser"
	"firestige.xyz/strix/internal/metrics"
)

// icmpFilter drops ICMP/ICMPv6 echo requests with an even sequence number
// and passes everything else, including anything it cannot parse.
type icmpFilter struct{}

func newICMPFilter(Deps) (Program, error) { return icmpFilter{}, nil }

func (icmpFilter) Name() string { return "icmp-filter" }

func (icmpFilter) Process(b *packet.Buffer, _ int) core.Verdict {
	var cur packet.Cursor

	ethType, err := parser.ParseEthernet(b, &cur, nil)
	if err != nil {
		metrics.ParseFailuresTotal.WithLabelValues("ethernet").Inc()
		return core.Pass()
	}

	var icmp core.ICMPHeader
	switch ethType {
	case parser.EtherTypeIPv4:
		proto, err := parser.ParseIPv4(b, &cur, nil)
		if err != nil || proto != parser.ProtoICMP {
			return core.Pass()
		}
		typ, err := parser.ParseICMP(b, &cur, &icmp)
		if err != nil || typ != parser.ICMPEchoRequest {
			return core.Pass()
		}
	case parser.EtherTypeIPv6:
		next, err := parser.ParseIPv6(b, &cur, nil)
		if err != nil || next != parser.ProtoICMPv6 {
			return core.Pass()
		}
		typ, err := parser.ParseICMPv6(b, &cur, &icmp)
		if err != nil || typ != parser.ICMPv6EchoRequest {
			return core.Pass()
		}
	default:
		return core.Pass()
	}

	if icmp.Sequence%2 == 0 {
		return core.Drop()
	}
	return core.Pass()
}
