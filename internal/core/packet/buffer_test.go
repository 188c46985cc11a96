package packet

import (
	"bytes"
	"testing"

	"firestige.xyz/strix/internal/core"
)

func TestNewBufferCopiesFrame(t *testing.T) {
	frame := []byte{1, 2, 3, 4}
	b := NewBuffer(frame, 8)

	if b.Len() != 4 {
		t.Fatalf("expected len 4, got %d", b.Len())
	}
	if b.Headroom() != 8 {
		t.Fatalf("expected headroom 8, got %d", b.Headroom())
	}
	if !bytes.Equal(b.Bytes(), frame) {
		t.Fatalf("expected %v, got %v", frame, b.Bytes())
	}

	// The buffer owns its copy
	frame[0] = 0xFF
	if b.Bytes()[0] != 1 {
		t.Error("buffer aliases the caller's frame")
	}
}

func TestAdjustHeadGrow(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3, 4}, 4)

	if err := b.AdjustHead(-4); err != nil {
		t.Fatalf("grow failed: %v", err)
	}
	if b.Len() != 8 {
		t.Errorf("expected len 8 after grow, got %d", b.Len())
	}
	if b.Headroom() != 0 {
		t.Errorf("expected headroom 0 after grow, got %d", b.Headroom())
	}
}

func TestAdjustHeadGrowBeyondHeadroom(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3, 4}, 2)

	err := b.AdjustHead(-3)
	if err != core.ErrHeadroom {
		t.Fatalf("expected ErrHeadroom, got %v", err)
	}
	// Failed resize leaves the buffer untouched
	if b.Len() != 4 || b.Headroom() != 2 {
		t.Errorf("buffer mutated by failed grow: len=%d headroom=%d", b.Len(), b.Headroom())
	}
}

func TestAdjustHeadShrink(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3, 4}, 0)

	if err := b.AdjustHead(4); err != nil {
		t.Fatalf("shrink failed: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("expected empty buffer, got len %d", b.Len())
	}

	err := b.AdjustHead(1)
	if err != core.ErrShrinkPastEnd {
		t.Fatalf("expected ErrShrinkPastEnd, got %v", err)
	}
}

func TestCursorFits(t *testing.T) {
	b := NewBuffer(make([]byte, 14), 0)
	var cur Cursor

	if !cur.Fits(b.Bytes(), 14) {
		t.Error("14 bytes should fit in a 14-byte view")
	}
	if cur.Fits(b.Bytes(), 15) {
		t.Error("15 bytes must not fit in a 14-byte view")
	}

	cur.Advance(14)
	if cur.Pos() != 14 {
		t.Errorf("expected pos 14, got %d", cur.Pos())
	}
	if cur.Fits(b.Bytes(), 1) {
		t.Error("cursor at end must not fit another byte")
	}
}
