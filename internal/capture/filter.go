package capture

import (
	"fmt"

	"golang.org/x/net/bpf"
)

// compileFilter assembles the classic-BPF program for one of the config
// filter tokens, for backends that take raw instructions (AF_PACKET).
func compileFilter(filter string, snaplen int) ([]bpf.RawInstruction, error) {
	accept := uint32(snaplen)

	var insns []bpf.Instruction
	switch filter {
	case "ip":
		insns = etherTypeFilter(accept, 0x0800)
	case "ip6":
		insns = etherTypeFilter(accept, 0x86DD)
	case "ip-or-ip6":
		insns = []bpf.Instruction{
			bpf.LoadAbsolute{Off: 12, Size: 2},
			bpf.JumpIf{Cond: bpf.JumpEqual, Val: 0x0800, SkipTrue: 1},
			bpf.JumpIf{Cond: bpf.JumpEqual, Val: 0x86DD, SkipFalse: 1},
			bpf.RetConstant{Val: accept},
			bpf.RetConstant{Val: 0},
		}
	default:
		return nil, fmt.Errorf("unknown capture filter %q", filter)
	}

	raw, err := bpf.Assemble(insns)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble BPF filter: %w", err)
	}
	return raw, nil
}

func etherTypeFilter(accept uint32, etherType uint32) []bpf.Instruction {
	return []bpf.Instruction{
		bpf.LoadAbsolute{Off: 12, Size: 2},
		bpf.JumpIf{Cond: bpf.JumpEqual, Val: etherType, SkipFalse: 1},
		bpf.RetConstant{Val: accept},
		bpf.RetConstant{Val: 0},
	}
}
