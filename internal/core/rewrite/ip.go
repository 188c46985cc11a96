package rewrite

import (
	"encoding/binary"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/csum"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/core/parser"
)

// SwapIPv4Addrs exchanges the source and destination addresses of a parsed
// IPv4 header in place. The header checksum does not change: the sum over the
// two address fields is commutative.
func SwapIPv4Addrs(b *packet.Buffer, hdr *core.IPv4Header) error {
	data := b.Bytes()
	if hdr.Offset+parser.IPv4MinHeaderLen > len(data) {
		return core.ErrTruncated
	}
	var tmp [4]byte
	src := data[hdr.Offset+12 : hdr.Offset+16]
	dst := data[hdr.Offset+16 : hdr.Offset+20]
	copy(tmp[:], src)
	copy(src, dst)
	copy(dst, tmp[:])
	hdr.SrcIP, hdr.DstIP = hdr.DstIP, hdr.SrcIP
	return nil
}

// SwapIPv6Addrs exchanges the source and destination addresses of a parsed
// IPv6 header in place.
func SwapIPv6Addrs(b *packet.Buffer, hdr *core.IPv6Header) error {
	data := b.Bytes()
	if hdr.Offset+parser.IPv6HeaderLen > len(data) {
		return core.ErrTruncated
	}
	var tmp [16]byte
	src := data[hdr.Offset+8 : hdr.Offset+24]
	dst := data[hdr.Offset+24 : hdr.Offset+40]
	copy(tmp[:], src)
	copy(src, dst)
	copy(dst, tmp[:])
	hdr.SrcIP, hdr.DstIP = hdr.DstIP, hdr.SrcIP
	return nil
}

// DecrementTTL lowers the IPv4 TTL by one and patches the header checksum
// incrementally. The TTL shares a 16-bit checksum word with the protocol
// field, so the update replaces that whole word.
func DecrementTTL(b *packet.Buffer, hdr *core.IPv4Header) error {
	data := b.Bytes()
	if hdr.Offset+parser.IPv4MinHeaderLen > len(data) {
		return core.ErrTruncated
	}
	off := hdr.Offset
	old := binary.BigEndian.Uint16(data[off+8 : off+10])
	new := old - 0x0100 // TTL is the high byte of the word
	check := csum.Replace16(binary.BigEndian.Uint16(data[off+10:off+12]), old, new)

	binary.BigEndian.PutUint16(data[off+8:off+10], new)
	binary.BigEndian.PutUint16(data[off+10:off+12], check)

	hdr.TTL--
	hdr.Checksum = check
	return nil
}

// DecrementHopLimit lowers the IPv6 hop limit by one. IPv6 has no header
// checksum, so this is a single byte store.
func DecrementHopLimit(b *packet.Buffer, hdr *core.IPv6Header) error {
	data := b.Bytes()
	if hdr.Offset+parser.IPv6HeaderLen > len(data) {
		return core.ErrTruncated
	}
	data[hdr.Offset+7]--
	hdr.HopLimit--
	return nil
}
