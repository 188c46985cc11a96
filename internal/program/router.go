package program

import (
	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/forward"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/core/parser"
	"firestige.xyz/strix/internal/metrics"
)

// router forwards IP packets according to the FIB. Unlike the other programs
// it treats a truncated Ethernet or IP header as Drop rather than Pass: a
// frame too short for its own declared layout has no business reaching the
// stack either.
type router struct {
	engine *forward.Engine
}

func newRouter(deps Deps) (Program, error) {
	return &router{engine: forward.NewEngine(deps.FIB)}, nil
}

func (p *router) Name() string { return "router" }

func (p *router) Process(b *packet.Buffer, ingress int) core.Verdict {
	var cur packet.Cursor

	ethType, err := parser.ParseEthernet(b, &cur, nil)
	if err != nil {
		metrics.ParseFailuresTotal.WithLabelValues("ethernet").Inc()
		return core.Drop()
	}

	switch ethType {
	case parser.EtherTypeIPv4:
		var ip core.IPv4Header
		if _, err := parser.ParseIPv4(b, &cur, &ip); err != nil {
			metrics.ParseFailuresTotal.WithLabelValues("ipv4").Inc()
			return core.Drop()
		}
		return p.engine.ForwardIPv4(b, &ip, ingress)

	case parser.EtherTypeIPv6:
		var ip core.IPv6Header
		if _, err := parser.ParseIPv6(b, &cur, &ip); err != nil {
			metrics.ParseFailuresTotal.WithLabelValues("ipv6").Inc()
			return core.Drop()
		}
		return p.engine.ForwardIPv6(b, &ip, ingress)
	}

	return core.Pass()
}
