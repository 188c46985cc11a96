package parser

import (
	"encoding/binary"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
)

// ParseICMP parses the fixed 8-byte ICMP header and returns the message type.
// Echo ID and sequence are decoded unconditionally; they only carry meaning
// for echo request/reply messages.
func ParseICMP(b *packet.Buffer, cur *packet.Cursor, hdr *core.ICMPHeader) (uint8, error) {
	return parseICMPCommon(b, cur, hdr)
}

// ParseICMPv6 parses the fixed 8-byte ICMPv6 header and returns the message
// type. The layout of the first 8 bytes matches ICMP.
func ParseICMPv6(b *packet.Buffer, cur *packet.Cursor, hdr *core.ICMPHeader) (uint8, error) {
	return parseICMPCommon(b, cur, hdr)
}

func parseICMPCommon(b *packet.Buffer, cur *packet.Cursor, hdr *core.ICMPHeader) (uint8, error) {
	data := b.Bytes()
	if !cur.Fits(data, ICMPHeaderLen) {
		return 0, core.ErrTruncated
	}

	off := cur.Pos()
	typ := data[off]
	if hdr != nil {
		hdr.Offset = off
		hdr.Type = typ
		hdr.Code = data[off+1]
		hdr.Checksum = binary.BigEndian.Uint16(data[off+2 : off+4])
		hdr.EchoID = binary.BigEndian.Uint16(data[off+4 : off+6])
		hdr.Sequence = binary.BigEndian.Uint16(data[off+6 : off+8])
	}
	cur.Advance(ICMPHeaderLen)

	return typ, nil
}
