package capture

import (
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"

	"firestige.xyz/strix/internal/core"
)

// pcapHandle captures through libpcap. Unlike the AF_PACKET ring it supports
// injection natively via WritePacketData.
type pcapHandle struct {
	handle *pcap.Handle
	ifname string
}

func newPcapHandle() Handle {
	return &pcapHandle{}
}

func (h *pcapHandle) Open(ifname string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	h.ifname = ifname

	handle, err := pcap.OpenLive(ifname, int32(opts.SnapLen), opts.Promiscuous, opts.Timeout)
	if err != nil {
		return fmt.Errorf("failed to open pcap handle on %s: %w", ifname, err)
	}
	h.handle = handle

	if opts.Filter != "" {
		expr, err := pcapFilterExpr(opts.Filter)
		if err != nil {
			h.Close()
			return err
		}
		if err := handle.SetBPFFilter(expr); err != nil {
			h.Close()
			return fmt.Errorf("failed to set BPF filter %q: %w", expr, err)
		}
	}

	return nil
}

// pcapFilterExpr maps the config filter tokens onto tcpdump syntax.
func pcapFilterExpr(filter string) (string, error) {
	switch filter {
	case "ip":
		return "ip", nil
	case "ip6":
		return "ip6", nil
	case "ip-or-ip6":
		return "ip or ip6", nil
	}
	return "", fmt.Errorf("unknown capture filter %q", filter)
}

func (h *pcapHandle) ReadPacketData() ([]byte, gopacket.CaptureInfo, error) {
	if h.handle == nil {
		return nil, gopacket.CaptureInfo{}, core.ErrHandleClosed
	}
	data, ci, err := h.handle.ReadPacketData()
	if err == pcap.NextErrorTimeoutExpired {
		return nil, ci, ErrReadTimeout
	}
	return data, ci, err
}

func (h *pcapHandle) Inject(data []byte) error {
	return h.handle.WritePacketData(data)
}

func (h *pcapHandle) Stats() (HandleStats, error) {
	s, err := h.handle.Stats()
	if err != nil {
		return HandleStats{}, err
	}
	return HandleStats{
		Received: uint64(s.PacketsReceived),
		Dropped:  uint64(s.PacketsDropped + s.PacketsIfDropped),
	}, nil
}

func (h *pcapHandle) Close() {
	if h.handle != nil {
		h.handle.Close()
		h.handle = nil
	}
}
