package program

import (
	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/core/parser"
)

// portRewrite decrements the TCP/UDP destination port of IP packets by one,
// in place, and passes everything. Non-IP and truncated packets go through
// untouched.
type portRewrite struct{}

func newPortRewrite(Deps) (Program, error) { return portRewrite{}, nil }

func (portRewrite) Name() string { return "port-rewrite" }

func (portRewrite) Process(b *packet.Buffer, _ int) core.Verdict {
	var cur packet.Cursor

	ethType, err := parser.ParseEthernet(b, &cur, nil)
	if err != nil {
		return core.Pass()
	}

	var proto uint8
	switch ethType {
	case parser.EtherTypeIPv4:
		proto, err = parser.ParseIPv4(b, &cur, nil)
	case parser.EtherTypeIPv6:
		proto, err = parser.ParseIPv6(b, &cur, nil)
	default:
		return core.Pass()
	}
	if err != nil {
		return core.Pass()
	}

	switch proto {
	case parser.ProtoTCP:
		var tcp core.TCPHeader
		if err := parser.ParseTCP(b, &cur, &tcp); err == nil {
			parser.SetTCPDestPort(b, &tcp, tcp.DstPort-1)
		}
	case parser.ProtoUDP:
		var udp core.UDPHeader
		if err := parser.ParseUDP(b, &cur, &udp); err == nil {
			parser.SetUDPDestPort(b, &udp, udp.DstPort-1)
		}
	}

	return core.Pass()
}
