package program

import (
	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/core/parser"
	"firestige.xyz/strix/internal/core/rewrite"
	"firestige.xyz/strix/internal/tables"
)

// macRedirect looks the source MAC up in the redirect table; on a hit it
// rewrites the destination MAC and redirects the frame through the configured
// device-map key. Unknown sources pass.
type macRedirect struct {
	redirects *tables.RedirectTable
	key       int
}

func newMACRedirect(deps Deps) (Program, error) {
	return &macRedirect{redirects: deps.Redirects, key: deps.RedirectKey}, nil
}

func (p *macRedirect) Name() string { return "mac-redirect" }

func (p *macRedirect) Process(b *packet.Buffer, _ int) core.Verdict {
	var cur packet.Cursor
	var eth core.EthernetHeader

	if _, err := parser.ParseEthernet(b, &cur, &eth); err != nil {
		return core.Pass()
	}

	dst, ok := p.redirects.Lookup(eth.SrcMAC)
	if !ok {
		return core.Pass()
	}

	if err := rewrite.SetDstMAC(b, dst); err != nil {
		return core.Pass()
	}
	return core.Redirect(p.key)
}
