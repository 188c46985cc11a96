package program

import (
	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/core/packet"
)

// passProgram passes every packet untouched. Baseline for throughput
// measurements.
type passProgram struct{}

func newPass(Deps) (Program, error) { return passProgram{}, nil }

func (passProgram) Name() string { return "pass" }

func (passProgram) Process(*packet.Buffer, int) core.Verdict {
	return core.Pass()
}
