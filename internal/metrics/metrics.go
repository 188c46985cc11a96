// Package metrics implements Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VerdictsTotal counts final verdicts by action.
	VerdictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strix_verdicts_total",
			Help: "Total number of packet verdicts by action",
		},
		[]string{"action"},
	)

	// ParseFailuresTotal counts truncated-header parse failures by layer.
	ParseFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strix_parse_failures_total",
			Help: "Total number of parse failures by protocol layer",
		},
		[]string{"layer"},
	)

	// VLANOpsTotal counts VLAN tag rewrites by operation and result.
	VLANOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strix_vlan_ops_total",
			Help: "Total number of VLAN push/pop operations",
		},
		[]string{"op", "result"},
	)

	// FIBOutcomesTotal counts FIB resolutions by outcome.
	FIBOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strix_fib_outcomes_total",
			Help: "Total number of FIB resolutions by outcome",
		},
		[]string{"outcome"},
	)

	// CapturePacketsTotal counts frames read from the capture handle.
	CapturePacketsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strix_capture_packets_total",
			Help: "Total number of frames read from the capture handle",
		},
		[]string{"interface"},
	)

	// CaptureDropsTotal counts frames the kernel dropped before we read them.
	CaptureDropsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strix_capture_drops_total",
			Help: "Total number of frames dropped by the capture layer",
		},
		[]string{"interface"},
	)

	// InjectErrorsTotal counts failed transmit/redirect injections.
	InjectErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strix_inject_errors_total",
			Help: "Total number of failed packet injections",
		},
		[]string{"interface"},
	)
)
