// Package parser implements the per-header protocol parsers.
//
// Each parser takes the buffer's current view through a cursor, performs a
// bounds check before every read, and on success advances the cursor by
// exactly the header's size and returns the next-layer protocol identifier in
// host byte order. On a bounds failure it returns core.ErrTruncated without
// moving the cursor. The optional header output may be nil when the caller
// only needs to skip the layer.
package parser

// Header sizes in bytes.
const (
	EthHeaderLen     = 14
	VLANHeaderLen    = 4
	IPv4MinHeaderLen = 20
	IPv6HeaderLen    = 40
	ICMPHeaderLen    = 8
	TCPHeaderLen     = 20
	UDPHeaderLen     = 8
)

// VLANMaxDepth bounds stacked-VLAN unrolling. The walk over nested tags is a
// fixed-count loop so per-packet work stays bounded no matter what the frame
// claims; frames tagged deeper than this keep a VLAN ethertype as their
// "upper-layer" protocol and fall out as unsupported.
const VLANMaxDepth = 5

// EtherType values (host byte order).
const (
	EtherTypeIPv4 = 0x0800
	EtherTypeIPv6 = 0x86DD
	EtherTypeVLAN = 0x8100 // 802.1Q
	EtherTypeQinQ = 0x88A8 // 802.1ad
)

// IP protocol numbers.
const (
	ProtoICMP   = 1
	ProtoTCP    = 6
	ProtoUDP    = 17
	ProtoICMPv6 = 58
)

// ICMP/ICMPv6 message types.
const (
	ICMPEchoReply     = 0
	ICMPEchoRequest   = 8
	ICMPv6EchoRequest = 128
	ICMPv6EchoReply   = 129
)

// ProtoIsVLAN reports whether an ethertype denotes an 802.1Q or 802.1ad tag.
func ProtoIsVLAN(proto uint16) bool {
	return proto == EtherTypeVLAN || proto == EtherTypeQinQ
}
