package program

import (
	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/core/parser"
	"firestige.xyz/strix/internal/core/rewrite"
)

// icmpEcho answers ICMP/ICMPv6 echo requests in place: IP addresses and MACs
// are swapped, the message type flips to echo-reply with an incremental
// checksum fix, and the frame is transmitted back out the arrival interface.
// Anything that is not a well-formed echo request passes untouched.
type icmpEcho struct{}

func newICMPEcho(Deps) (Program, error) { return icmpEcho{}, nil }

func (icmpEcho) Name() string { return "icmp-echo" }

func (icmpEcho) Process(b *packet.Buffer, _ int) core.Verdict {
	var cur packet.Cursor

	ethType, err := parser.ParseEthernet(b, &cur, nil)
	if err != nil {
		return core.Pass()
	}

	var (
		icmp      core.ICMPHeader
		replyType uint8
	)

	switch ethType {
	case parser.EtherTypeIPv4:
		var ip core.IPv4Header
		proto, err := parser.ParseIPv4(b, &cur, &ip)
		if err != nil || proto != parser.ProtoICMP {
			return core.Pass()
		}
		typ, err := parser.ParseICMP(b, &cur, &icmp)
		if err != nil || typ != parser.ICMPEchoRequest {
			return core.Pass()
		}
		if err := rewrite.SwapIPv4Addrs(b, &ip); err != nil {
			return core.Pass()
		}
		replyType = parser.ICMPEchoReply

	case parser.EtherTypeIPv6:
		var ip core.IPv6Header
		next, err := parser.ParseIPv6(b, &cur, &ip)
		if err != nil || next != parser.ProtoICMPv6 {
			return core.Pass()
		}
		typ, err := parser.ParseICMPv6(b, &cur, &icmp)
		if err != nil || typ != parser.ICMPv6EchoRequest {
			return core.Pass()
		}
		if err := rewrite.SwapIPv6Addrs(b, &ip); err != nil {
			return core.Pass()
		}
		replyType = parser.ICMPv6EchoReply

	default:
		return core.Pass()
	}

	if err := rewrite.SwapMACs(b); err != nil {
		return core.Pass()
	}
	if err := rewrite.SetICMPType(b, &icmp, replyType); err != nil {
		return core.Pass()
	}

	return core.Transmit()
}
