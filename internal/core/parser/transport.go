package parser

import (
	"encoding/binary"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
)

// ParseTCP parses the fixed 20-byte portion of a TCP header. Options are not
// decoded; the cursor advances past the fixed portion only.
func ParseTCP(b *packet.Buffer, cur *packet.Cursor, hdr *core.TCPHeader) error {
	data := b.Bytes()
	if !cur.Fits(data, TCPHeaderLen) {
		return core.ErrTruncated
	}

	off := cur.Pos()
	if hdr != nil {
		hdr.Offset = off
		hdr.SrcPort = binary.BigEndian.Uint16(data[off : off+2])
		hdr.DstPort = binary.BigEndian.Uint16(data[off+2 : off+4])
		hdr.DataOffset = data[off+12] >> 4
	}
	cur.Advance(TCPHeaderLen)

	return nil
}

// ParseUDP parses the fixed 8-byte UDP header.
func ParseUDP(b *packet.Buffer, cur *packet.Cursor, hdr *core.UDPHeader) error {
	data := b.Bytes()
	if !cur.Fits(data, UDPHeaderLen) {
		return core.ErrTruncated
	}

	off := cur.Pos()
	if hdr != nil {
		hdr.Offset = off
		hdr.SrcPort = binary.BigEndian.Uint16(data[off : off+2])
		hdr.DstPort = binary.BigEndian.Uint16(data[off+2 : off+4])
		hdr.Length = binary.BigEndian.Uint16(data[off+4 : off+6])
		hdr.Checksum = binary.BigEndian.Uint16(data[off+6 : off+8])
	}
	cur.Advance(UDPHeaderLen)

	return nil
}

// SetTCPDestPort rewrites the destination port of an already parsed TCP
// header in place. The header's layout was validated at parse time, so only
// the field extent is re-checked against the current view.
func SetTCPDestPort(b *packet.Buffer, hdr *core.TCPHeader, port uint16) error {
	data := b.Bytes()
	if hdr.Offset+4 > len(data) {
		return core.ErrTruncated
	}
	binary.BigEndian.PutUint16(data[hdr.Offset+2:hdr.Offset+4], port)
	hdr.DstPort = port
	return nil
}

// SetUDPDestPort rewrites the destination port of an already parsed UDP
// header in place.
func SetUDPDestPort(b *packet.Buffer, hdr *core.UDPHeader, port uint16) error {
	data := b.Bytes()
	if hdr.Offset+4 > len(data) {
		return core.ErrTruncated
	}
	binary.BigEndian.PutUint16(data[hdr.Offset+2:hdr.Offset+4], port)
	hdr.DstPort = port
	return nil
}
