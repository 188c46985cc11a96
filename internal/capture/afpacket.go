package capture

import (
	"fmt"
	"net"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/afpacket"

	"firestige.xyz/strix/internal/core"
)

// afpacketHandle captures through an AF_PACKET TPacketV3 ring. Injection goes
// through a raw socket bound to the same interface; the ring itself is
// receive-only.
type afpacketHandle struct {
	tpacket *afpacket.TPacket
	inject  *injector
	ifname  string
	options *Options
}

func newAFPacketHandle() Handle {
	return &afpacketHandle{}
}

func (h *afpacketHandle) Open(ifname string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	h.ifname = ifname
	h.options = opts

	iface, err := net.InterfaceByName(ifname)
	if err != nil {
		return fmt.Errorf("failed to get interface %s: %w", ifname, err)
	}

	frameSize, blockSize, numBlocks, err := computeFrameSizeAndBlocks(opts)
	if err != nil {
		return fmt.Errorf("failed to compute ring geometry: %w", err)
	}

	tpacket, err := afpacket.NewTPacket(
		afpacket.OptInterface(iface.Name),
		afpacket.OptFrameSize(frameSize),
		afpacket.OptBlockSize(blockSize),
		afpacket.OptNumBlocks(numBlocks),
		afpacket.OptPollTimeout(opts.Timeout),
		afpacket.SocketRaw,
		afpacket.TPacketVersion3,
	)
	if err != nil {
		return fmt.Errorf("failed to create TPacket: %w", err)
	}
	h.tpacket = tpacket

	if opts.FanoutID > 0 {
		if err := tpacket.SetFanout(afpacket.FanoutHashWithDefrag, opts.FanoutID); err != nil {
			h.Close()
			return fmt.Errorf("failed to set fanout: %w", err)
		}
	}

	if opts.Filter != "" {
		raw, err := compileFilter(opts.Filter, opts.SnapLen)
		if err != nil {
			h.Close()
			return err
		}
		if err := tpacket.SetBPF(raw); err != nil {
			h.Close()
			return fmt.Errorf("failed to set BPF filter: %w", err)
		}
	}

	inj, err := newInjector(iface.Index)
	if err != nil {
		h.Close()
		return fmt.Errorf("failed to open inject socket: %w", err)
	}
	h.inject = inj

	return nil
}

// computeFrameSizeAndBlocks sizes the TPacketV3 ring from the snap length and
// the requested total buffer.
func computeFrameSizeAndBlocks(opts *Options) (frameSize, blockSize, numBlocks int, err error) {
	pageSize := os.Getpagesize()
	if opts.SnapLen < pageSize {
		frameSize = pageSize / (pageSize / opts.SnapLen)
	} else {
		frameSize = (opts.SnapLen/pageSize + 1) * pageSize
	}
	blockSize = frameSize * 128
	numBlocks = opts.BufferSize / blockSize
	if numBlocks < 1 {
		return 0, 0, 0, fmt.Errorf("buffer size %d too small for frame size %d",
			opts.BufferSize, frameSize)
	}
	return frameSize, blockSize, numBlocks, nil
}

func (h *afpacketHandle) ReadPacketData() ([]byte, gopacket.CaptureInfo, error) {
	if h.tpacket == nil {
		return nil, gopacket.CaptureInfo{}, core.ErrHandleClosed
	}
	data, ci, err := h.tpacket.ReadPacketData()
	if err == afpacket.ErrTimeout {
		return nil, ci, ErrReadTimeout
	}
	return data, ci, err
}

func (h *afpacketHandle) Inject(data []byte) error {
	return h.inject.Send(data)
}

func (h *afpacketHandle) Stats() (HandleStats, error) {
	_, v3, err := h.tpacket.SocketStats()
	if err != nil {
		return HandleStats{}, err
	}
	return HandleStats{
		Received: uint64(v3.Packets()),
		Dropped:  uint64(v3.Drops()),
	}, nil
}

func (h *afpacketHandle) Close() {
	if h.tpacket != nil {
		h.tpacket.Close()
		h.tpacket = nil
	}
	if h.inject != nil {
		h.inject.Close()
		h.inject = nil
	}
}
