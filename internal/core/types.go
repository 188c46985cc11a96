// Package core defines core data structures with zero external dependencies.
package core

import "net/netip"

// MAC is a 6-byte link-layer hardware address.
type MAC [6]byte

// ParseMAC converts a textual address ("aa:bb:cc:dd:ee:ff") into a MAC.
// Kept here so table loading does not pull net.HardwareAddr into hot-path types.
func ParseMAC(s string) (MAC, bool) {
	var m MAC
	if len(s) != 17 {
		return m, false
	}
	for i := 0; i < 6; i++ {
		hi, ok1 := fromHex(s[i*3])
		lo, ok2 := fromHex(s[i*3+1])
		if !ok1 || !ok2 {
			return MAC{}, false
		}
		if i < 5 && s[i*3+2] != ':' && s[i*3+2] != '-' {
			return MAC{}, false
		}
		m[i] = hi<<4 | lo
	}
	return m, true
}

func fromHex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// EthernetHeader represents the L2 Ethernet frame header, including any
// stacked 802.1Q/802.1ad tags consumed while walking past it.
// Offsets are relative to the buffer's current logical start and are only
// valid until the next head adjustment.
type EthernetHeader struct {
	Offset    int
	DstMAC    MAC
	SrcMAC    MAC
	EtherType uint16    // outermost ethertype as stored on the wire
	VLANs     []VLANTag // decoded tags, outermost first
}

// VLANTag is one 4-byte 802.1Q/802.1ad tag.
type VLANTag struct {
	Offset     int
	TCI        uint16 // priority + DEI + VLAN ID
	EncapProto uint16 // ethertype of the encapsulated payload
}

// ID extracts the 12-bit VLAN ID from the TCI.
func (t VLANTag) ID() uint16 { return t.TCI & 0x0FFF }

// IPv4Header represents a decoded IPv4 header.
type IPv4Header struct {
	Offset   int
	IHL      uint8 // header length in 32-bit words
	TOS      uint8
	TotalLen uint16
	TTL      uint8
	Protocol uint8
	Checksum uint16
	SrcIP    netip.Addr
	DstIP    netip.Addr
}

// HeaderLen returns the header length in bytes (IHL * 4).
func (h *IPv4Header) HeaderLen() int { return int(h.IHL) * 4 }

// IPv6Header represents the fixed 40-byte IPv6 header.
type IPv6Header struct {
	Offset     int
	FlowInfo   uint32 // traffic class + flow label (lower 28 bits of word 0)
	PayloadLen uint16
	NextHeader uint8
	HopLimit   uint8
	SrcIP      netip.Addr
	DstIP      netip.Addr
}

// ICMPHeader represents the first 8 bytes of an ICMP or ICMPv6 message.
// Echo ID/sequence are only meaningful for echo request/reply types.
type ICMPHeader struct {
	Offset   int
	Type     uint8
	Code     uint8
	Checksum uint16
	EchoID   uint16
	Sequence uint16
}

// TCPHeader carries the fields this engine cares about. Options are not
// decoded; DataOffset is kept so a caller can skip past them.
type TCPHeader struct {
	Offset     int
	SrcPort    uint16
	DstPort    uint16
	DataOffset uint8 // header length in 32-bit words
}

// UDPHeader represents the fixed 8-byte UDP header.
type UDPHeader struct {
	Offset   int
	SrcPort  uint16
	DstPort  uint16
	Length   uint16
	Checksum uint16
}

// Address family values for RouteLookupKey.
const (
	FamilyIPv4 = 4
	FamilyIPv6 = 6
)

// RouteLookupKey is the input to a FIB resolution, built from a parsed IP
// header. Transport ports are deliberately absent: routing here is not
// transport-aware.
type RouteLookupKey struct {
	Family   int
	TOS      uint8  // IPv4 only
	FlowInfo uint32 // IPv6 only
	Protocol uint8
	TotalLen uint16
	SrcIP    netip.Addr
	DstIP    netip.Addr
	Ingress  int // ingress interface index
}
