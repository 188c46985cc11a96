// Package config handles configuration loading using viper.
package config

import (
	"fmt"
	"net/netip"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/log"
)

// Config is the top-level configuration for one strix instance: the interface
// it attaches to, the program it runs, and the static tables the program
// consults.
type Config struct {
	Interface string        `mapstructure:"interface" yaml:"interface"`
	Program   string        `mapstructure:"program" yaml:"program"`
	Capture   CaptureConfig `mapstructure:"capture" yaml:"capture"`

	VLAN      VLANConfig      `mapstructure:"vlan" yaml:"vlan"`
	Redirects []RedirectEntry `mapstructure:"redirects" yaml:"redirects"`
	// RedirectDevice is the device-map index mac-redirect sends through.
	RedirectDevice int           `mapstructure:"redirect_device" yaml:"redirect_device"`
	Devices        []DeviceEntry `mapstructure:"devices" yaml:"devices"`
	Routes         []RouteEntry  `mapstructure:"routes" yaml:"routes"`

	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
	Log     log.Config    `mapstructure:"log" yaml:"log"`
}

// CaptureConfig selects and tunes the capture backend.
type CaptureConfig struct {
	Backend     string `mapstructure:"backend" yaml:"backend"` // afpacket | pcap
	SnapLen     int    `mapstructure:"snaplen" yaml:"snaplen"`
	BufferSize  int    `mapstructure:"buffer_size" yaml:"buffer_size"`
	TimeoutMs   int    `mapstructure:"timeout_ms" yaml:"timeout_ms"`
	Promiscuous bool   `mapstructure:"promiscuous" yaml:"promiscuous"`
	FanoutID    uint16 `mapstructure:"fanout_id" yaml:"fanout_id"`
	Workers     int    `mapstructure:"workers" yaml:"workers"`
	Filter      string `mapstructure:"filter" yaml:"filter"` // "", ip, ip6, ip-or-ip6
	// Headroom reserved in front of each packet so VLAN push can grow the
	// buffer without reallocating.
	Headroom int `mapstructure:"headroom" yaml:"headroom"`
}

// VLANConfig tunes the vlan-swap program.
type VLANConfig struct {
	PushID uint16 `mapstructure:"push_id" yaml:"push_id"`
}

// RedirectEntry is one source-MAC to destination-MAC mapping.
type RedirectEntry struct {
	SrcMAC string `mapstructure:"src_mac" yaml:"src_mac"`
	DstMAC string `mapstructure:"dst_mac" yaml:"dst_mac"`
}

// DeviceEntry maps a logical device index to a physical interface index.
type DeviceEntry struct {
	Index   int `mapstructure:"index" yaml:"index"`
	Ifindex int `mapstructure:"ifindex" yaml:"ifindex"`
}

// RouteEntry is one static FIB route. Outcome is one of the FIB outcome
// tokens ("success", "blackhole", ...); the remaining fields only apply to
// success routes.
type RouteEntry struct {
	Prefix  string `mapstructure:"prefix" yaml:"prefix"`
	Outcome string `mapstructure:"outcome" yaml:"outcome"`
	Ifindex int    `mapstructure:"ifindex" yaml:"ifindex"`
	SrcMAC  string `mapstructure:"src_mac" yaml:"src_mac"`
	DstMAC  string `mapstructure:"dst_mac" yaml:"dst_mac"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Listen  string `mapstructure:"listen" yaml:"listen"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// Validate checks everything that can be checked without touching the
// network: the interface name is set, MACs and prefixes parse, and the tables
// are internally consistent. Program existence is checked at build time by
// the program registry.
func (c *Config) Validate() error {
	if c.Interface == "" {
		return fmt.Errorf("%w: interface is required", core.ErrConfigInvalid)
	}
	if c.Program == "" {
		return fmt.Errorf("%w: program is required", core.ErrConfigInvalid)
	}
	switch c.Capture.Backend {
	case "afpacket", "pcap":
	default:
		return fmt.Errorf("%w: capture backend must be afpacket or pcap, got %q",
			core.ErrConfigInvalid, c.Capture.Backend)
	}
	if c.Capture.Workers < 1 {
		return fmt.Errorf("%w: capture workers must be >= 1", core.ErrConfigInvalid)
	}

	for _, r := range c.Redirects {
		if _, ok := core.ParseMAC(r.SrcMAC); !ok {
			return fmt.Errorf("%w: bad redirect src_mac %q", core.ErrConfigInvalid, r.SrcMAC)
		}
		if _, ok := core.ParseMAC(r.DstMAC); !ok {
			return fmt.Errorf("%w: bad redirect dst_mac %q", core.ErrConfigInvalid, r.DstMAC)
		}
	}

	for _, r := range c.Routes {
		if _, err := netip.ParsePrefix(r.Prefix); err != nil {
			return fmt.Errorf("%w: bad route prefix %q: %v", core.ErrConfigInvalid, r.Prefix, err)
		}
		if r.Outcome == "success" {
			if _, ok := core.ParseMAC(r.SrcMAC); !ok {
				return fmt.Errorf("%w: bad route src_mac %q", core.ErrConfigInvalid, r.SrcMAC)
			}
			if _, ok := core.ParseMAC(r.DstMAC); !ok {
				return fmt.Errorf("%w: bad route dst_mac %q", core.ErrConfigInvalid, r.DstMAC)
			}
		}
	}

	return nil
}
