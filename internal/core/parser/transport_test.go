package parser

import (
	"testing"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
)

func tcpHeader(src, dst uint16) []byte {
	hdr := make([]byte, TCPHeaderLen)
	hdr[0] = byte(src >> 8)
	hdr[1] = byte(src)
	hdr[2] = byte(dst >> 8)
	hdr[3] = byte(dst)
	hdr[12] = 5 << 4 // data offset 5
	return hdr
}

func TestParseTCP(t *testing.T) {
	b := packet.NewBuffer(tcpHeader(443, 51000), 0)
	var cur packet.Cursor
	var tcp core.TCPHeader

	if err := ParseTCP(b, &cur, &tcp); err != nil {
		t.Fatalf("ParseTCP failed: %v", err)
	}
	if tcp.SrcPort != 443 || tcp.DstPort != 51000 {
		t.Errorf("expected ports 443->51000, got %d->%d", tcp.SrcPort, tcp.DstPort)
	}
	if cur.Pos() != TCPHeaderLen {
		t.Errorf("expected cursor at 20, got %d", cur.Pos())
	}
}

func TestParseTCPTruncated(t *testing.T) {
	b := packet.NewBuffer(tcpHeader(443, 51000)[:19], 0)
	var cur packet.Cursor

	if err := ParseTCP(b, &cur, nil); err != core.ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if cur.Pos() != 0 {
		t.Errorf("cursor advanced on failure")
	}
}

func TestSetTCPDestPort(t *testing.T) {
	b := packet.NewBuffer(tcpHeader(443, 8080), 0)
	var cur packet.Cursor
	var tcp core.TCPHeader

	if err := ParseTCP(b, &cur, &tcp); err != nil {
		t.Fatalf("ParseTCP failed: %v", err)
	}
	if err := SetTCPDestPort(b, &tcp, tcp.DstPort-1); err != nil {
		t.Fatalf("SetTCPDestPort failed: %v", err)
	}
	if tcp.DstPort != 8079 {
		t.Errorf("expected struct port 8079, got %d", tcp.DstPort)
	}
	got := uint16(b.Bytes()[2])<<8 | uint16(b.Bytes()[3])
	if got != 8079 {
		t.Errorf("expected wire port 8079, got %d", got)
	}
}

func TestParseUDPAndSetDestPort(t *testing.T) {
	hdr := []byte{
		0x00, 0x35, // src 53
		0x13, 0x88, // dst 5000
		0x00, 0x08, // length
		0x00, 0x00, // checksum
	}
	b := packet.NewBuffer(hdr, 0)
	var cur packet.Cursor
	var udp core.UDPHeader

	if err := ParseUDP(b, &cur, &udp); err != nil {
		t.Fatalf("ParseUDP failed: %v", err)
	}
	if udp.SrcPort != 53 || udp.DstPort != 5000 {
		t.Errorf("expected ports 53->5000, got %d->%d", udp.SrcPort, udp.DstPort)
	}

	if err := SetUDPDestPort(b, &udp, udp.DstPort-1); err != nil {
		t.Fatalf("SetUDPDestPort failed: %v", err)
	}
	got := uint16(b.Bytes()[2])<<8 | uint16(b.Bytes()[3])
	if got != 4999 {
		t.Errorf("expected wire port 4999, got %d", got)
	}
}
