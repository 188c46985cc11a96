package cmd

import (
	"context"
	"fmt"
	"net/netip"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"firestige.xyz/strix/internal/capture"
	"firestige.xyz/strix/internal/config"
	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/dispatch"
	"firestige.xyz/strix/internal/fib"
	"firestige.xyz/strix/internal/log"
	"firestige.xyz/strix/internal/metrics"
	"firestige.xyz/strix/internal/program"
	"firestige.xyz/strix/internal/stats"
	"firestige.xyz/strix/internal/tables"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Attach the engine to an interface and process packets",
	Long: `
Attach the configured program to a network interface and process packets
until interrupted.

Examples:
  strix run -c config.yml        # Run with config.yml
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := log.Init(cfg.Log); err != nil {
			return err
		}
		return runEngine(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runEngine(cfg *config.Config) error {
	logger := log.GetLogger()

	redirects, devices, fibTable, err := buildTables(cfg)
	if err != nil {
		return err
	}

	prog, err := program.New(cfg.Program, program.Deps{
		FIB:         fibTable,
		Redirects:   redirects,
		Devices:     devices,
		PushVLANID:  cfg.VLAN.PushID,
		RedirectKey: cfg.RedirectDevice,
	})
	if err != nil {
		return fmt.Errorf("%v (available: %v)", err, program.Names())
	}

	collector := stats.NewCollector()

	var srv *metrics.Server
	if cfg.Metrics.Enabled {
		srv = metrics.NewServer(cfg.Metrics.Listen, cfg.Metrics.Path)
		srv.Start()
	}

	runner, err := capture.NewRunner(capture.RunnerConfig{
		Interface: cfg.Interface,
		Backend:   cfg.Capture.Backend,
		Workers:   cfg.Capture.Workers,
		Headroom:  cfg.Capture.Headroom,
		Options: &capture.Options{
			SnapLen:     cfg.Capture.SnapLen,
			BufferSize:  cfg.Capture.BufferSize,
			Timeout:     time.Duration(cfg.Capture.TimeoutMs) * time.Millisecond,
			Promiscuous: cfg.Capture.Promiscuous,
			FanoutID:    cfg.Capture.FanoutID,
			Filter:      cfg.Capture.Filter,
		},
		Program:    prog,
		Dispatcher: dispatch.NewDispatcher(collector),
		Devices:    devices,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = runner.Run(ctx)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Stop(shutdownCtx)
	}

	for action, count := range collector.Snapshot() {
		logger.WithFields(map[string]interface{}{
			"action": action,
			"count":  count,
		}).Info("verdict total")
	}

	return err
}

func buildTables(cfg *config.Config) (*tables.RedirectTable, *tables.DeviceMap, *fib.Table, error) {
	redirects := tables.NewRedirectTable()
	for _, e := range cfg.Redirects {
		src, ok1 := core.ParseMAC(e.SrcMAC)
		dst, ok2 := core.ParseMAC(e.DstMAC)
		if !ok1 || !ok2 {
			return nil, nil, nil, fmt.Errorf("%w: bad redirect entry %v", core.ErrConfigInvalid, e)
		}
		redirects.Set(src, dst)
	}

	devices := tables.NewDeviceMap()
	for _, e := range cfg.Devices {
		devices.Set(e.Index, e.Ifindex)
	}

	fibTable := fib.NewTable()
	for _, e := range cfg.Routes {
		route, err := parseRoute(e)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := fibTable.Add(route); err != nil {
			return nil, nil, nil, err
		}
	}

	return redirects, devices, fibTable, nil
}

func parseRoute(e config.RouteEntry) (fib.Route, error) {
	prefix, err := netip.ParsePrefix(e.Prefix)
	if err != nil {
		return fib.Route{}, fmt.Errorf("%w: route prefix %q: %v", core.ErrConfigInvalid, e.Prefix, err)
	}
	outcome, err := fib.ParseOutcome(e.Outcome)
	if err != nil {
		return fib.Route{}, fmt.Errorf("%w: %v", core.ErrConfigInvalid, err)
	}
	route := fib.Route{Prefix: prefix, Outcome: outcome, Ifindex: e.Ifindex}
	if outcome == core.OutcomeSuccess {
		src, ok1 := core.ParseMAC(e.SrcMAC)
		dst, ok2 := core.ParseMAC(e.DstMAC)
		if !ok1 || !ok2 {
			return fib.Route{}, fmt.Errorf("%w: route %q needs src_mac and dst_mac",
				core.ErrConfigInvalid, e.Prefix)
		}
		route.SrcMAC, route.DstMAC = src, dst
	}
	return route, nil
}
