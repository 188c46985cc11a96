package rewrite

import (
	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/core/parser"
)

// SwapMACs exchanges the source and destination MAC addresses of the Ethernet
// header at the buffer's logical start.
func SwapMACs(b *packet.Buffer) error {
	data := b.Bytes()
	if len(data) < parser.EthHeaderLen {
		return core.ErrTruncated
	}
	var tmp [6]byte
	copy(tmp[:], data[0:6])
	copy(data[0:6], data[6:12])
	copy(data[6:12], tmp[:])
	return nil
}

// SetMACs writes new source and destination MAC addresses into the Ethernet
// header at the buffer's logical start.
func SetMACs(b *packet.Buffer, src, dst core.MAC) error {
	data := b.Bytes()
	if len(data) < parser.EthHeaderLen {
		return core.ErrTruncated
	}
	copy(data[0:6], dst[:])
	copy(data[6:12], src[:])
	return nil
}

// SetDstMAC rewrites only the destination MAC address.
func SetDstMAC(b *packet.Buffer, dst core.MAC) error {
	data := b.Bytes()
	if len(data) < parser.EthHeaderLen {
		return core.ErrTruncated
	}
	copy(data[0:6], dst[:])
	return nil
}
