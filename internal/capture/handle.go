// Package capture attaches the engine to a network interface. It provides
// the capture handles (AF_PACKET and libpcap), raw-socket injection for
// transmit/redirect verdicts, and the per-worker run loop.
package capture

import (
	"errors"
	"time"

	"github.com/google/gopacket"
)

// ErrReadTimeout is returned by ReadPacketData when the poll timeout expired
// with no packet. Callers treat it as "try again".
var ErrReadTimeout = errors.New("strix: capture read timeout")

// Handle is one open capture endpoint on an interface.
type Handle interface {
	// Open binds the handle to the named interface.
	Open(ifname string, opts *Options) error
	// ReadPacketData returns the next frame. The returned slice is owned by
	// the caller.
	ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
	// Inject writes a frame back out the handle's interface.
	Inject(data []byte) error
	// Stats returns cumulative receive/drop counts since Open.
	Stats() (HandleStats, error)
	// Close releases the handle.
	Close()
}

// Options tune a capture handle.
type Options struct {
	SnapLen     int
	BufferSize  int
	Timeout     time.Duration
	Promiscuous bool
	FanoutID    uint16
	Filter      string // "", "ip", "ip6", "ip-or-ip6"
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{
		SnapLen:     65535,
		BufferSize:  8 * 1024 * 1024,
		Timeout:     100 * time.Millisecond,
		Promiscuous: true,
	}
}

// HandleStats are cumulative kernel-side counters for one handle.
type HandleStats struct {
	Received uint64
	Dropped  uint64
}
