package capture

import (
	"fmt"

	"golang.org/x/sys/unix"

	"firestige.xyz/strix/internal/core"
)

// injector is a raw AF_PACKET socket bound to one interface, used to emit
// frames for transmit and redirect verdicts.
type injector struct {
	fd      int
	ifindex int
}

func newInjector(ifindex int) (*injector, error) {
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(htons(unix.ETH_P_ALL)))
	if err != nil {
		return nil, fmt.Errorf("raw socket: %w", err)
	}
	addr := &unix.SockaddrLinklayer{
		Protocol: htons(unix.ETH_P_ALL),
		Ifindex:  ifindex,
	}
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("bind ifindex %d: %w", ifindex, err)
	}
	return &injector{fd: fd, ifindex: ifindex}, nil
}

func (i *injector) Send(frame []byte) error {
	if i.fd < 0 {
		return core.ErrHandleClosed
	}
	_, err := unix.Write(i.fd, frame)
	return err
}

func (i *injector) Close() {
	if i.fd >= 0 {
		unix.Close(i.fd)
		i.fd = -1
	}
}

func htons(v uint16) uint16 {
	return v<<8 | v>>8
}
