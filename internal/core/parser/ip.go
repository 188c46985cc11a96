package parser

import (
	"encoding/binary"
	"net/netip"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
)

// ParseIPv4 parses an IPv4 header at the cursor and returns the payload
// protocol number. The header is variable-length: after the fixed-size bounds
// check the full extent (IHL*4) is re-validated before the cursor advances.
func ParseIPv4(b *packet.Buffer, cur *packet.Cursor, hdr *core.IPv4Header) (uint8, error) {
	data := b.Bytes()
	if !cur.Fits(data, IPv4MinHeaderLen) {
		return 0, core.ErrTruncated
	}

	off := cur.Pos()
	ihl := data[off] & 0x0F
	hdrLen := int(ihl) * 4
	if hdrLen < IPv4MinHeaderLen {
		return 0, core.ErrTruncated
	}
	if !cur.Fits(data, hdrLen) {
		return 0, core.ErrTruncated
	}

	proto := data[off+9]
	if hdr != nil {
		hdr.Offset = off
		hdr.IHL = ihl
		hdr.TOS = data[off+1]
		hdr.TotalLen = binary.BigEndian.Uint16(data[off+2 : off+4])
		hdr.TTL = data[off+8]
		hdr.Protocol = proto
		hdr.Checksum = binary.BigEndian.Uint16(data[off+10 : off+12])
		hdr.SrcIP = netip.AddrFrom4([4]byte(data[off+12 : off+16]))
		hdr.DstIP = netip.AddrFrom4([4]byte(data[off+16 : off+20]))
	}
	cur.Advance(hdrLen)

	return proto, nil
}

// ParseIPv6 parses the fixed 40-byte IPv6 header and returns the next-header
// value. Extension headers are not walked.
func ParseIPv6(b *packet.Buffer, cur *packet.Cursor, hdr *core.IPv6Header) (uint8, error) {
	data := b.Bytes()
	if !cur.Fits(data, IPv6HeaderLen) {
		return 0, core.ErrTruncated
	}

	off := cur.Pos()
	next := data[off+6]
	if hdr != nil {
		hdr.Offset = off
		hdr.FlowInfo = binary.BigEndian.Uint32(data[off:off+4]) & 0x0FFFFFFF
		hdr.PayloadLen = binary.BigEndian.Uint16(data[off+4 : off+6])
		hdr.NextHeader = next
		hdr.HopLimit = data[off+7]
		hdr.SrcIP = netip.AddrFrom16([16]byte(data[off+8 : off+24]))
		hdr.DstIP = netip.AddrFrom16([16]byte(data[off+24 : off+40]))
	}
	cur.Advance(IPv6HeaderLen)

	return next, nil
}
