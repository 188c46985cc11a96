package csum

import (
	"encoding/binary"
	"testing"
)

func TestAdd16Carry(t *testing.T) {
	if got := Add16(0xFFFF, 0x0001); got != 0x0001 {
		t.Errorf("expected end-around carry to yield 0x0001, got 0x%04x", got)
	}
	if got := Add16(0x0001, 0x0002); got != 0x0003 {
		t.Errorf("expected 0x0003, got 0x%04x", got)
	}
	if got := Add16(0x8000, 0x8000); got != 0x0001 {
		t.Errorf("expected 0x0001, got 0x%04x", got)
	}
}

// TestReplace16MatchesFullRecompute checks the incremental update against a
// full recomputation over a small header, for field values that exercise
// carry propagation.
func TestReplace16MatchesFullRecompute(t *testing.T) {
	oldWords := []uint16{0x0000, 0x0001, 0x0800, 0x7FFF, 0x8000, 0xFFFE, 0xFFFF}
	newWords := []uint16{0x0000, 0x0001, 0x00FF, 0x8001, 0xFFFF}
	filler := []uint16{0x0000, 0x1234, 0xFFFF}

	for _, f := range filler {
		for _, old := range oldWords {
			for _, new := range newWords {
				hdr := make([]byte, 8)
				binary.BigEndian.PutUint16(hdr[0:2], old)
				binary.BigEndian.PutUint16(hdr[4:6], f)
				binary.BigEndian.PutUint16(hdr[6:8], f)

				// Checksum over the header with the checksum field zeroed.
				check := Sum16(hdr)
				binary.BigEndian.PutUint16(hdr[2:4], check)

				// Mutate the first word and update incrementally.
				binary.BigEndian.PutUint16(hdr[0:2], new)
				incremental := Replace16(check, old, new)

				binary.BigEndian.PutUint16(hdr[2:4], 0)
				full := Sum16(hdr)

				if incremental != full {
					t.Errorf("old=0x%04x new=0x%04x filler=0x%04x: incremental 0x%04x != full 0x%04x",
						old, new, f, incremental, full)
				}
			}
		}
	}
}

func TestSum16ValidatesItself(t *testing.T) {
	// A header containing its own correct checksum sums to zero.
	hdr := []byte{0x45, 0x00, 0x00, 0x1C, 0x00, 0x00, 0x00, 0x00, 0x40, 0x01,
		0x00, 0x00, 0x0A, 0x00, 0x00, 0x01, 0x0A, 0x00, 0x00, 0x02}
	check := Sum16(hdr)
	hdr[10] = byte(check >> 8)
	hdr[11] = byte(check)
	if got := Sum16(hdr); got != 0 {
		t.Errorf("expected header with embedded checksum to sum to 0, got 0x%04x", got)
	}
}

func TestSum16OddLength(t *testing.T) {
	even := Sum16([]byte{0xAB, 0xCD, 0x12, 0x00})
	odd := Sum16([]byte{0xAB, 0xCD, 0x12})
	if even != odd {
		t.Errorf("odd trailing byte must pad with zero: 0x%04x != 0x%04x", even, odd)
	}
}
