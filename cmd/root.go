// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strix",
	Short: "Strix - line-rate packet parsing and forwarding engine",
	Long: `Strix is a userspace XDP-style packet engine. It attaches to a network
interface, runs a per-packet program over every received frame within a hard
per-packet work budget, and acts on the verdict: pass, drop, transmit back,
or redirect out another interface.

Programs:
  pass          baseline, passes everything
  icmp-filter   drop ICMP echo requests with even sequence numbers
  port-rewrite  decrement TCP/UDP destination ports in place
  vlan-swap     pop the outer VLAN tag, or push one when untagged
  icmp-echo     answer ICMP/ICMPv6 echo requests in place
  mac-redirect  redirect frames by source MAC through the device map
  router        forward by FIB lookup with TTL and MAC rewrite`,
	Version: "0.1.0",
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "/etc/strix/config.yml",
		"config file path")
}
