// Package program implements the per-packet programs that can be attached to
// an interface. A program sees one packet at a time, works within a bounded
// step budget (single header walk, fixed-depth VLAN scan, no blocking calls)
// and yields exactly one verdict.
package program

import (
	"fmt"
	"sort"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/forward"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/tables"
)

// Program processes one packet and yields its verdict. Implementations keep
// no per-packet state and are safe for concurrent use from multiple workers.
type Program interface {
	Name() string
	Process(b *packet.Buffer, ingress int) core.Verdict
}

// Deps are the externally owned services a program may consult. All of them
// are non-blocking and concurrent-safe.
type Deps struct {
	FIB       forward.Resolver
	Redirects *tables.RedirectTable
	Devices   *tables.DeviceMap

	// PushVLANID is the tag id vlan-swap pushes onto untagged frames.
	PushVLANID uint16
	// RedirectKey is the device-map key mac-redirect transmits through.
	RedirectKey int
}

type factory func(deps Deps) (Program, error)

var registry = map[string]factory{
	"pass":         newPass,
	"icmp-filter":  newICMPFilter,
	"port-rewrite": newPortRewrite,
	"vlan-swap":    newVLANSwap,
	"icmp-echo":    newICMPEcho,
	"mac-redirect": newMACRedirect,
	"router":       newRouter,
}

// New builds the named program with the given dependencies.
func New(name string, deps Deps) (Program, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownProgram, name)
	}
	return f(deps)
}

// Names lists the available programs, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
