package capture

import (
	"fmt"

	"firestige.xyz/strix/internal/core"
)

// NewHandle returns an unopened handle for the named backend.
func NewHandle(backend string) (Handle, error) {
	switch backend {
	case "afpacket":
		return newAFPacketHandle(), nil
	case "pcap":
		return newPcapHandle(), nil
	}
	return nil, fmt.Errorf("%w: %q", core.ErrUnknownBackend, backend)
}
