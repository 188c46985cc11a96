package core

// Action is the disposition class of a verdict, mirroring the XDP action
// taxonomy.
type Action uint8

const (
	// ActionPass hands the packet to the normal stack, unmodified or not.
	ActionPass Action = iota
	// ActionDrop discards the packet.
	ActionDrop
	// ActionTx sends the packet back out the interface it arrived on.
	ActionTx
	// ActionRedirect sends the packet out another interface.
	ActionRedirect

	actionCount
)

// NumActions is the number of distinct actions, for counter arrays.
const NumActions = int(actionCount)

func (a Action) String() string {
	switch a {
	case ActionPass:
		return "pass"
	case ActionDrop:
		return "drop"
	case ActionTx:
		return "tx"
	case ActionRedirect:
		return "redirect"
	}
	return "unknown"
}

// Verdict is the final disposition of one packet. It is produced exactly once
// per packet and is immutable once chosen. Ifindex is only meaningful for
// ActionRedirect and names a logical device-map index.
type Verdict struct {
	Action  Action
	Ifindex int
}

// Pass hands the packet to the normal stack.
func Pass() Verdict { return Verdict{Action: ActionPass} }

// Drop discards the packet.
func Drop() Verdict { return Verdict{Action: ActionDrop} }

// Transmit bounces the packet out the arrival interface.
func Transmit() Verdict { return Verdict{Action: ActionTx} }

// Redirect sends the packet out the interface behind the given device-map
// index.
func Redirect(ifindex int) Verdict {
	return Verdict{Action: ActionRedirect, Ifindex: ifindex}
}
