// Package rewrite implements in-place header mutation: VLAN tag push/pop via
// head resize, MAC and IP address rewriting, and checksum-preserving field
// updates. Every mutation either completes or leaves the buffer in its
// pre-mutation state.
package rewrite

import (
	"encoding/binary"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/core/parser"
)

// PopVLAN removes the outermost VLAN tag from an Ethernet-fronted buffer and
// returns the popped tag's TCI in host byte order. The Ethernet header is
// saved before the head shrinks, then written back at the new start with the
// decapsulated ethertype. After the resize the Ethernet extent is re-validated
// even though the shrink arithmetic implies it fits.
func PopVLAN(b *packet.Buffer) (uint16, error) {
	data := b.Bytes()
	if len(data) < parser.EthHeaderLen {
		return 0, core.ErrTruncated
	}
	if !parser.ProtoIsVLAN(binary.BigEndian.Uint16(data[12:14])) {
		return 0, core.ErrNoVLANTag
	}
	if len(data) < parser.EthHeaderLen+parser.VLANHeaderLen {
		return 0, core.ErrTruncated
	}

	tci := binary.BigEndian.Uint16(data[14:16])
	encap := binary.BigEndian.Uint16(data[16:18])

	var ethCopy [parser.EthHeaderLen]byte
	copy(ethCopy[:], data[:parser.EthHeaderLen])

	if err := b.AdjustHead(parser.VLANHeaderLen); err != nil {
		return 0, err
	}

	// Offsets derived above are stale now; re-validate from the new start.
	data = b.Bytes()
	if len(data) < parser.EthHeaderLen {
		return 0, core.ErrTruncated
	}
	copy(data[:parser.EthHeaderLen], ethCopy[:])
	binary.BigEndian.PutUint16(data[12:14], encap)

	return tci, nil
}

// PushVLAN inserts a VLAN tag carrying the given TCI immediately after the
// Ethernet header, growing the buffer head by one tag size. Fails without
// resizing when the frame is already tagged or the headroom is exhausted.
func PushVLAN(b *packet.Buffer, tci uint16) error {
	data := b.Bytes()
	if len(data) < parser.EthHeaderLen {
		return core.ErrTruncated
	}
	encap := binary.BigEndian.Uint16(data[12:14])
	if parser.ProtoIsVLAN(encap) {
		return core.ErrVLANTagged
	}

	var ethCopy [parser.EthHeaderLen]byte
	copy(ethCopy[:], data[:parser.EthHeaderLen])

	if err := b.AdjustHead(-parser.VLANHeaderLen); err != nil {
		return err
	}

	data = b.Bytes()
	if len(data) < parser.EthHeaderLen+parser.VLANHeaderLen {
		return core.ErrTruncated
	}
	copy(data[:parser.EthHeaderLen], ethCopy[:])
	binary.BigEndian.PutUint16(data[12:14], parser.EtherTypeVLAN)
	binary.BigEndian.PutUint16(data[14:16], tci)
	binary.BigEndian.PutUint16(data[16:18], encap)

	return nil
}
