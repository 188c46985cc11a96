package dispatch

import (
	"testing"

	"firestige.xyz/strix/internal/core"
)

type countingRecorder struct {
	counts map[core.Action]int
}

func (r *countingRecorder) Record(action core.Action) {
	r.counts[action]++
}

func TestDispatchRecordsExactlyOnce(t *testing.T) {
	rec := &countingRecorder{counts: make(map[core.Action]int)}
	d := NewDispatcher(rec)

	verdicts := []core.Verdict{
		core.Pass(),
		core.Drop(),
		core.Transmit(),
		core.Redirect(4),
		core.Pass(),
	}
	for _, v := range verdicts {
		got := d.Dispatch(v)
		if got != v {
			t.Errorf("verdict altered in flight: got %+v, want %+v", got, v)
		}
	}

	want := map[core.Action]int{
		core.ActionPass:     2,
		core.ActionDrop:     1,
		core.ActionTx:       1,
		core.ActionRedirect: 1,
	}
	for action, n := range want {
		if rec.counts[action] != n {
			t.Errorf("%v recorded %d times, want %d", action, rec.counts[action], n)
		}
	}
}
