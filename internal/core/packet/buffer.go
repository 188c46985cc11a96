// Package packet provides the mutable per-packet buffer and the bounds-tracked
// cursor used to walk stacked protocol headers.
package packet

import "firestige.xyz/strix/internal/core"

// Buffer is a mutable byte region with a logical start and end. The logical
// start can move backward (grow, to insert a header) or forward (shrink, to
// remove one) through AdjustHead. Every adjustment invalidates all previously
// derived header offsets; callers must re-parse from the new start.
//
// One Buffer exists per packet. It is never shared between goroutines.
type Buffer struct {
	data []byte
	head int
	tail int
}

// NewBuffer copies frame into a fresh buffer with the given headroom in front
// of the logical start, so that later head growth does not reallocate.
func NewBuffer(frame []byte, headroom int) *Buffer {
	if headroom < 0 {
		headroom = 0
	}
	data := make([]byte, headroom+len(frame))
	copy(data[headroom:], frame)
	return &Buffer{data: data, head: headroom, tail: headroom + len(frame)}
}

// Len returns the number of bytes between the logical start and end.
func (b *Buffer) Len() int { return b.tail - b.head }

// Headroom returns how many bytes the logical start can still grow.
func (b *Buffer) Headroom() int { return b.head }

// Bytes returns the live view of the packet, logical start to logical end.
// The view is invalidated by the next AdjustHead.
func (b *Buffer) Bytes() []byte { return b.data[b.head:b.tail] }

// AdjustHead moves the logical start by delta bytes: positive shrinks the
// packet from the front, negative grows it into the headroom. On failure the
// buffer is left untouched. The sign convention follows xdp_adjust_head.
func (b *Buffer) AdjustHead(delta int) error {
	head := b.head + delta
	if head < 0 {
		return core.ErrHeadroom
	}
	if head > b.tail {
		return core.ErrShrinkPastEnd
	}
	b.head = head
	return nil
}
