package parser

import (
	"encoding/binary"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
)

// ParseEthernet parses the fixed Ethernet header and walks past up to
// VLANMaxDepth stacked VLAN tags. It returns the ethertype of the payload the
// cursor now points at, in host byte order.
//
// If the depth bound is reached while the working ethertype still denotes a
// VLAN tag, that VLAN ethertype is returned as-is; callers comparing it
// against upper-layer protocol values will treat the frame as unsupported.
// A tag that does not fully fit before the buffer end likewise stops the walk
// without an error, leaving the cursor after the last complete tag.
func ParseEthernet(b *packet.Buffer, cur *packet.Cursor, eth *core.EthernetHeader) (uint16, error) {
	data := b.Bytes()
	if !cur.Fits(data, EthHeaderLen) {
		return 0, core.ErrTruncated
	}

	off := cur.Pos()
	proto := binary.BigEndian.Uint16(data[off+12 : off+14])
	if eth != nil {
		eth.Offset = off
		copy(eth.DstMAC[:], data[off:off+6])
		copy(eth.SrcMAC[:], data[off+6:off+12])
		eth.EtherType = proto
		eth.VLANs = eth.VLANs[:0]
	}
	cur.Advance(EthHeaderLen)

	for i := 0; i < VLANMaxDepth; i++ {
		if !ProtoIsVLAN(proto) {
			break
		}
		if !cur.Fits(data, VLANHeaderLen) {
			break
		}
		tagOff := cur.Pos()
		tci := binary.BigEndian.Uint16(data[tagOff : tagOff+2])
		proto = binary.BigEndian.Uint16(data[tagOff+2 : tagOff+4])
		if eth != nil {
			eth.VLANs = append(eth.VLANs, core.VLANTag{
				Offset:     tagOff,
				TCI:        tci,
				EncapProto: proto,
			})
		}
		cur.Advance(VLANHeaderLen)
	}

	return proto, nil
}
