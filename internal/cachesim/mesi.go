package cachesim

import "fmt"

// Controller is the MESI coherence controller: a pure function from
// (state, event) to (next state, emitted bus/L1 actions), aside from
// the side effects it drives through the injected ports. Unspecified
// state/event combinations leave the state unchanged.
type Controller struct {
	bus BusPort
	l1  L1Port
	log Sink
}

// NewController builds a Controller wired to bus, l1, and log.
func NewController(bus BusPort, l1 L1Port, log Sink) *Controller {
	return &Controller{bus: bus, l1: l1, log: log}
}

// OnProcessor handles a processor-originated read or write against a
// line currently in state, returning the line's next state. On an
// Invalid read it emits a Read bus operation and queries the snoop
// result afterward to decide between Shared and Exclusive.
func (c *Controller) OnProcessor(state MESIState, addr uint64, isWrite bool) MESIState {
	switch {
	case state == Invalid && !isWrite:
		c.bus.BusOperation(BusRead, addr)
		switch c.bus.SnoopResult(addr) {
		case Hit, HitModified:
			return Shared
		default:
			return Exclusive
		}

	case state == Invalid && isWrite:
		c.bus.BusOperation(BusRWIM, addr)
		return Modified

	case state == Shared && !isWrite:
		return Shared

	case state == Shared && isWrite:
		c.bus.BusOperation(BusInvalidate, addr)
		return Modified

	case state == Exclusive && !isWrite:
		return Exclusive

	case state == Exclusive && isWrite:
		return Modified

	case state == Modified:
		// Read or write, Modified is sticky until evicted.
		return Modified

	default:
		return state
	}
}

// OnSnoop handles a bus operation observed from a peer against a line
// currently in state, returning the line's next state. The controller
// never transitions Invalid to a valid state via the snoop path.
func (c *Controller) OnSnoop(state MESIState, op BusOp, addr uint64) MESIState {
	if state == Invalid {
		c.bus.PutSnoopResult(addr, NoHit)
		return Invalid
	}

	if op == BusWrite {
		// A peer bus write while we hold a valid copy is impossible
		// under MESI: the line should already have been invalidated.
		c.log.Warn("%v", fmt.Errorf("%w: observed peer Write on address %s while in %s",
			ErrProtocolInconsistency, hexAddr(addr), state))
		return state
	}

	if state == Modified {
		c.bus.PutSnoopResult(addr, HitModified)
		c.l1.Send(GetLine, addr)
		c.bus.BusOperation(BusWrite, addr) // write-back

		if op == BusRWIM || op == BusInvalidate {
			c.l1.Send(InvalidateLine, addr)
			return Invalid
		}
		return Shared
	}

	// Shared or Exclusive: clean states.
	c.bus.PutSnoopResult(addr, Hit)
	if op == BusRWIM || op == BusInvalidate {
		c.l1.Send(InvalidateLine, addr)
		return Invalid
	}
	return Shared
}
