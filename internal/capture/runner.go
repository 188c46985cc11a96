package capture

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/dispatch"
	"firestige.xyz/strix/internal/core/packet"
	"firestige.xyz/strix/internal/log"
	"firestige.xyz/strix/internal/metrics"
	"firestige.xyz/strix/internal/program"
	"firestige.xyz/strix/internal/tables"
)

// Runner drives the per-packet loop: read a frame, run the program, dispatch
// the verdict, act on it. Each worker owns its handle; with AF_PACKET fanout
// the kernel spreads flows across workers. Workers share only the injected
// tables and the statistics collector.
type Runner struct {
	ifname   string
	ifindex  int
	backend  string
	workers  int
	headroom int
	opts     *Options

	prog    program.Program
	disp    *dispatch.Dispatcher
	devices *tables.DeviceMap
	log     log.Logger

	mu        sync.Mutex
	injectors map[int]*injector
}

// RunnerConfig wires a Runner.
type RunnerConfig struct {
	Interface string
	Backend   string
	Workers   int
	Headroom  int
	Options   *Options

	Program    program.Program
	Dispatcher *dispatch.Dispatcher
	Devices    *tables.DeviceMap
	Logger     log.Logger
}

// NewRunner resolves the interface and prepares workers. Handles are opened
// in Run so a failed start leaves nothing behind.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	iface, err := net.InterfaceByName(cfg.Interface)
	if err != nil {
		return nil, fmt.Errorf("interface %s: %w", cfg.Interface, err)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if cfg.Backend == "pcap" && workers > 1 {
		// libpcap duplicates traffic across handles; fanout is AF_PACKET only.
		cfg.Logger.Warn("pcap backend ignores workers > 1")
		workers = 1
	}
	return &Runner{
		ifname:    cfg.Interface,
		ifindex:   iface.Index,
		backend:   cfg.Backend,
		workers:   workers,
		headroom:  cfg.Headroom,
		opts:      cfg.Options,
		prog:      cfg.Program,
		disp:      cfg.Dispatcher,
		devices:   cfg.Devices,
		log:       cfg.Logger,
		injectors: make(map[int]*injector),
	}, nil
}

// Run opens the handles and processes packets until ctx is cancelled or a
// worker fails.
func (r *Runner) Run(ctx context.Context) error {
	handles := make([]Handle, 0, r.workers)
	defer func() {
		for _, h := range handles {
			h.Close()
		}
		r.closeInjectors()
	}()

	for i := 0; i < r.workers; i++ {
		h, err := NewHandle(r.backend)
		if err != nil {
			return err
		}
		if err := h.Open(r.ifname, r.opts); err != nil {
			return fmt.Errorf("worker %d: %w", i, err)
		}
		handles = append(handles, h)
	}

	r.log.WithFields(map[string]interface{}{
		"interface": r.ifname,
		"ifindex":   r.ifindex,
		"backend":   r.backend,
		"workers":   r.workers,
		"program":   r.prog.Name(),
	}).Info("attached")

	var wg sync.WaitGroup
	errCh := make(chan error, r.workers)
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for i, h := range handles {
		wg.Add(1)
		go func(id int, h Handle) {
			defer wg.Done()
			if err := r.worker(workerCtx, h); err != nil {
				errCh <- fmt.Errorf("worker %d: %w", id, err)
				cancel()
			}
		}(i, h)
	}

	statsDone := make(chan struct{})
	go func() {
		defer close(statsDone)
		r.pollStats(workerCtx, handles)
	}()

	wg.Wait()
	<-statsDone

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

func (r *Runner) worker(ctx context.Context, h Handle) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		frame, _, err := h.ReadPacketData()
		if err == ErrReadTimeout {
			continue
		}
		if err != nil {
			return err
		}
		metrics.CapturePacketsTotal.WithLabelValues(r.ifname).Inc()

		buf := packet.NewBuffer(frame, r.headroom)
		verdict := r.disp.Dispatch(r.prog.Process(buf, r.ifindex))

		switch verdict.Action {
		case core.ActionTx:
			if err := h.Inject(buf.Bytes()); err != nil {
				metrics.InjectErrorsTotal.WithLabelValues(r.ifname).Inc()
				r.log.WithError(err).Debug("transmit failed")
			}
		case core.ActionRedirect:
			r.redirect(verdict.Ifindex, buf.Bytes())
		}
		// Pass and Drop need no action here: the capture socket is a tap, the
		// kernel already delivers the original frame to the stack.
	}
}

func (r *Runner) redirect(logical int, frame []byte) {
	physical, ok := r.devices.Lookup(logical)
	if !ok {
		r.log.WithField("logical", logical).Debug("redirect to unmapped device")
		return
	}
	inj, err := r.injectorFor(physical)
	if err != nil {
		metrics.InjectErrorsTotal.WithLabelValues(r.ifname).Inc()
		r.log.WithError(err).Debug("redirect socket failed")
		return
	}
	if err := inj.Send(frame); err != nil {
		metrics.InjectErrorsTotal.WithLabelValues(r.ifname).Inc()
		r.log.WithError(err).Debug("redirect send failed")
	}
}

// injectorFor lazily opens one raw socket per egress interface.
func (r *Runner) injectorFor(ifindex int) (*injector, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inj, ok := r.injectors[ifindex]; ok {
		return inj, nil
	}
	inj, err := newInjector(ifindex)
	if err != nil {
		return nil, err
	}
	r.injectors[ifindex] = inj
	return inj, nil
}

func (r *Runner) closeInjectors() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inj := range r.injectors {
		inj.Close()
	}
	r.injectors = make(map[int]*injector)
}

// pollStats mirrors kernel-side drop counters into Prometheus.
func (r *Runner) pollStats(ctx context.Context, handles []Handle) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	var lastDrops uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var drops uint64
			for _, h := range handles {
				s, err := h.Stats()
				if err != nil {
					continue
				}
				drops += s.Dropped
			}
			if drops > lastDrops {
				metrics.CaptureDropsTotal.WithLabelValues(r.ifname).Add(float64(drops - lastDrops))
				lastDrops = drops
			}
		}
	}
}
