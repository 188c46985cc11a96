package rewrite

import (
	"encoding/binary"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/csum"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/core/parser"
)

// SetICMPType replaces the ICMP/ICMPv6 message type in place and patches the
// checksum incrementally. The type shares a 16-bit checksum word with the
// code field, so the whole word is replaced.
func SetICMPType(b *packet.Buffer, hdr *core.ICMPHeader, typ uint8) error {
	data := b.Bytes()
	if hdr.Offset+parser.ICMPHeaderLen > len(data) {
		return core.ErrTruncated
	}
	off := hdr.Offset
	old := binary.BigEndian.Uint16(data[off : off+2])
	data[off] = typ
	new := binary.BigEndian.Uint16(data[off : off+2])
	check := csum.Replace16(binary.BigEndian.Uint16(data[off+2:off+4]), old, new)
	binary.BigEndian.PutUint16(data[off+2:off+4], check)

	hdr.Type = typ
	hdr.Checksum = check
	return nil
}
