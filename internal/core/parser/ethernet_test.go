package parser

import (
	"testing"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
)

func TestParseEthernetBasic(t *testing.T) {
	data := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, // Dst MAC
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, // Src MAC
		0x08, 0x00, // EtherType: IPv4
		0x45, 0x00, // Payload (start of IP header)
	}
	b := packet.NewBuffer(data, 0)
	var cur packet.Cursor
	var eth core.EthernetHeader

	proto, err := ParseEthernet(b, &cur, &eth)
	if err != nil {
		t.Fatalf("ParseEthernet failed: %v", err)
	}
	if proto != EtherTypeIPv4 {
		t.Errorf("expected proto 0x0800, got 0x%04x", proto)
	}
	if cur.Pos() != EthHeaderLen {
		t.Errorf("expected cursor at %d, got %d", EthHeaderLen, cur.Pos())
	}

	wantDst := core.MAC{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	wantSrc := core.MAC{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	if eth.DstMAC != wantDst {
		t.Errorf("expected DstMAC %v, got %v", wantDst, eth.DstMAC)
	}
	if eth.SrcMAC != wantSrc {
		t.Errorf("expected SrcMAC %v, got %v", wantSrc, eth.SrcMAC)
	}
	if len(eth.VLANs) != 0 {
		t.Errorf("expected no VLAN tags, got %d", len(eth.VLANs))
	}
}

func TestParseEthernetTruncated(t *testing.T) {
	for size := 0; size < EthHeaderLen; size++ {
		b := packet.NewBuffer(make([]byte, size), 0)
		var cur packet.Cursor

		_, err := ParseEthernet(b, &cur, nil)
		if err != core.ErrTruncated {
			t.Errorf("size %d: expected ErrTruncated, got %v", size, err)
		}
		if cur.Pos() != 0 {
			t.Errorf("size %d: cursor advanced to %d on failure", size, cur.Pos())
		}
	}
}

func TestParseEthernetSingleVLAN(t *testing.T) {
	data := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55,
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
		0x81, 0x00, // 802.1Q
		0x00, 0x2A, // TCI: VLAN ID 42
		0x08, 0x00, // Inner EtherType: IPv4
	}
	b := packet.NewBuffer(data, 0)
	var cur packet.Cursor
	var eth core.EthernetHeader

	proto, err := ParseEthernet(b, &cur, &eth)
	if err != nil {
		t.Fatalf("ParseEthernet failed: %v", err)
	}
	if proto != EtherTypeIPv4 {
		t.Errorf("expected inner proto 0x0800, got 0x%04x", proto)
	}
	if cur.Pos() != EthHeaderLen+VLANHeaderLen {
		t.Errorf("expected cursor at %d, got %d", EthHeaderLen+VLANHeaderLen, cur.Pos())
	}
	if len(eth.VLANs) != 1 {
		t.Fatalf("expected 1 VLAN tag, got %d", len(eth.VLANs))
	}
	if eth.VLANs[0].ID() != 42 {
		t.Errorf("expected VLAN ID 42, got %d", eth.VLANs[0].ID())
	}
	if eth.EtherType != EtherTypeVLAN {
		t.Errorf("expected outer ethertype 0x8100, got 0x%04x", eth.EtherType)
	}
}

func TestParseEthernetStackedVLANDepthBound(t *testing.T) {
	// Six tags on the wire: unrolling must stop after five and return the
	// still-VLAN ethertype as-is.
	frame := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55,
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
		0x81, 0x00,
	}
	for i := 0; i < 5; i++ {
		frame = append(frame,
			0x00, byte(i+1), // TCI
			0x81, 0x00, // next layer still VLAN
		)
	}
	frame = append(frame,
		0x00, 0x06, // TCI of tag 6
		0x08, 0x00, // IPv4, never reached
	)

	b := packet.NewBuffer(frame, 0)
	var cur packet.Cursor
	var eth core.EthernetHeader

	proto, err := ParseEthernet(b, &cur, &eth)
	if err != nil {
		t.Fatalf("ParseEthernet failed: %v", err)
	}
	if proto != EtherTypeVLAN {
		t.Errorf("expected leftover VLAN ethertype 0x8100, got 0x%04x", proto)
	}
	if len(eth.VLANs) != VLANMaxDepth {
		t.Errorf("expected %d decoded tags, got %d", VLANMaxDepth, len(eth.VLANs))
	}
	wantPos := EthHeaderLen + VLANMaxDepth*VLANHeaderLen
	if cur.Pos() != wantPos {
		t.Errorf("expected cursor exactly after tag %d at %d, got %d",
			VLANMaxDepth, wantPos, cur.Pos())
	}
}

func TestParseEthernetVLANTruncatedTag(t *testing.T) {
	// A frame that ends in the middle of a VLAN tag: the walk stops without
	// error, cursor after the Ethernet header.
	data := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55,
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
		0x81, 0x00,
		0x00, 0x2A, // half a tag
	}
	b := packet.NewBuffer(data, 0)
	var cur packet.Cursor

	proto, err := ParseEthernet(b, &cur, nil)
	if err != nil {
		t.Fatalf("ParseEthernet failed: %v", err)
	}
	if proto != EtherTypeVLAN {
		t.Errorf("expected 0x8100, got 0x%04x", proto)
	}
	if cur.Pos() != EthHeaderLen {
		t.Errorf("expected cursor at %d, got %d", EthHeaderLen, cur.Pos())
	}
}

func TestParseVLANTaggedIPv4TCPChain(t *testing.T) {
	// Full header walk over one frame: Ethernet, one 802.1Q tag (id 42),
	// IPv4, TCP. Each layer's parse must leave the cursor exactly at the next
	// layer's offset, ending at 14+4+20+20.
	frame := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55,
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
		0x81, 0x00, // 802.1Q
		0x00, 0x2A, // TCI: VLAN ID 42
		0x08, 0x00, // inner EtherType: IPv4
	}
	frame = append(frame, ipv4Header(5, ProtoTCP, 64)...)
	frame = append(frame, tcpHeader(443, 51000)...)

	b := packet.NewBuffer(frame, 0)
	var cur packet.Cursor
	var eth core.EthernetHeader

	proto, err := ParseEthernet(b, &cur, &eth)
	if err != nil {
		t.Fatalf("ParseEthernet failed: %v", err)
	}
	if proto != EtherTypeIPv4 {
		t.Fatalf("expected inner proto 0x0800, got 0x%04x", proto)
	}
	if len(eth.VLANs) != 1 || eth.VLANs[0].ID() != 42 {
		t.Errorf("expected one tag with ID 42, got %v", eth.VLANs)
	}
	if cur.Pos() != EthHeaderLen+VLANHeaderLen {
		t.Fatalf("expected cursor at %d after L2, got %d",
			EthHeaderLen+VLANHeaderLen, cur.Pos())
	}

	var ip core.IPv4Header
	l4proto, err := ParseIPv4(b, &cur, &ip)
	if err != nil {
		t.Fatalf("ParseIPv4 failed: %v", err)
	}
	if l4proto != ProtoTCP {
		t.Fatalf("expected final protocol TCP, got %d", l4proto)
	}
	if ip.Offset != EthHeaderLen+VLANHeaderLen {
		t.Errorf("expected IP header at offset 18, got %d", ip.Offset)
	}

	if cur.Pos() != EthHeaderLen+VLANHeaderLen+IPv4MinHeaderLen {
		t.Fatalf("expected cursor at %d before L4, got %d",
			EthHeaderLen+VLANHeaderLen+IPv4MinHeaderLen, cur.Pos())
	}

	var tcp core.TCPHeader
	if err := ParseTCP(b, &cur, &tcp); err != nil {
		t.Fatalf("ParseTCP failed: %v", err)
	}
	if tcp.SrcPort != 443 || tcp.DstPort != 51000 {
		t.Errorf("expected ports 443->51000, got %d->%d", tcp.SrcPort, tcp.DstPort)
	}

	wantPos := EthHeaderLen + VLANHeaderLen + IPv4MinHeaderLen + TCPHeaderLen
	if cur.Pos() != wantPos {
		t.Errorf("expected cursor at %d after the full walk, got %d", wantPos, cur.Pos())
	}
}

func TestParseEthernetQinQ(t *testing.T) {
	data := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55,
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
		0x88, 0xA8, // 802.1ad outer
		0x00, 0x64, // TCI: 100
		0x81, 0x00, // 802.1Q inner
		0x00, 0xC8, // TCI: 200
		0x86, 0xDD, // IPv6
	}
	b := packet.NewBuffer(data, 0)
	var cur packet.Cursor
	var eth core.EthernetHeader

	proto, err := ParseEthernet(b, &cur, &eth)
	if err != nil {
		t.Fatalf("ParseEthernet failed: %v", err)
	}
	if proto != EtherTypeIPv6 {
		t.Errorf("expected 0x86DD, got 0x%04x", proto)
	}
	if len(eth.VLANs) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(eth.VLANs))
	}
	if eth.VLANs[0].ID() != 100 || eth.VLANs[1].ID() != 200 {
		t.Errorf("expected IDs 100,200, got %d,%d", eth.VLANs[0].ID(), eth.VLANs[1].ID())
	}
}
