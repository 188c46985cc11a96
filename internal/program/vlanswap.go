package program

import (
	"encoding/binary"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/core/parser"
	"firestige.xyz/strix/internal/core/rewrite"
	"firestige.xyz/strix/internal/metrics"
)

// vlanSwap pops the outermost VLAN tag when one is present, otherwise pushes
// a tag with the configured id. The packet always passes; a failed rewrite
// leaves the frame exactly as it arrived.
type vlanSwap struct {
	pushID uint16
}

func newVLANSwap(deps Deps) (Program, error) {
	id := deps.PushVLANID
	if id == 0 {
		id = 1
	}
	return &vlanSwap{pushID: id}, nil
}

func (p *vlanSwap) Name() string { return "vlan-swap" }

func (p *vlanSwap) Process(b *packet.Buffer, _ int) core.Verdict {
	data := b.Bytes()
	if len(data) < parser.EthHeaderLen {
		metrics.ParseFailuresTotal.WithLabelValues("ethernet").Inc()
		return core.Pass()
	}

	if parser.ProtoIsVLAN(binary.BigEndian.Uint16(data[12:14])) {
		if _, err := rewrite.PopVLAN(b); err != nil {
			metrics.VLANOpsTotal.WithLabelValues("pop", "error").Inc()
		} else {
			metrics.VLANOpsTotal.WithLabelValues("pop", "ok").Inc()
		}
	} else {
		if err := rewrite.PushVLAN(b, p.pushID); err != nil {
			metrics.VLANOpsTotal.WithLabelValues("push", "error").Inc()
		} else {
			metrics.VLANOpsTotal.WithLabelValues("push", "ok").Inc()
		}
	}

	return core.Pass()
}
