package cachesim

import "fmt"

// BusPort is the external collaborator modeling the shared coherence
// bus and the peer LLCs snooping on it. The simulator only depends on
// this interface — production code injects a concrete implementation
// at construction, never a package global (spec.md §9).
type BusPort interface {
	// BusOperation emits a bus operation for addr, logging the observed
	// aggregate snoop result.
	BusOperation(op BusOp, addr uint64)

	// SnoopResult returns the aggregate peer response to a bus
	// operation at addr, derived from addr's two low-order bits:
	// 00 -> Hit, 01 -> HitModified, 10|11 -> NoHit.
	SnoopResult(addr uint64) SnoopResult

	// PutSnoopResult publishes this LLC's own response to a peer's bus
	// operation at addr.
	PutSnoopResult(addr uint64, result SnoopResult)
}

// Sink receives the single-line log messages the ports emit at Normal
// verbosity, Debug-level internal trace lines, Warn-level diagnostics
// for recovered Protocol-Inconsistency / Trace-Format conditions, and
// Always-level output (the statistics block, opcode-9 dump) that
// silent mode must still show.
type Sink interface {
	Normal(format string, args ...any)
	Debug(format string, args ...any)
	Warn(format string, args ...any)
	Always(format string, args ...any)
}

// StdBusPort is the default BusPort: it has no state of its own beyond
// a Sink, and derives peer snoop responses deterministically from the
// address, per the stub contract in spec.md §4.4.
type StdBusPort struct {
	log Sink
}

// NewStdBusPort builds a BusPort that logs through log.
func NewStdBusPort(log Sink) *StdBusPort {
	return &StdBusPort{log: log}
}

func (p *StdBusPort) BusOperation(op BusOp, addr uint64) {
	result := p.SnoopResult(addr)
	p.log.Normal("BusOp: %s, Address: %s, Snoop Result: %s", op, hexAddr(addr), result)
}

func (p *StdBusPort) SnoopResult(addr uint64) SnoopResult {
	switch addr & 0b11 {
	case 0b00:
		return Hit
	case 0b01:
		return HitModified
	default: // 0b10, 0b11
		return NoHit
	}
}

func (p *StdBusPort) PutSnoopResult(addr uint64, result SnoopResult) {
	p.log.Normal("Address: %s, Snoop Result: %s", hexAddr(addr), result)
}

func hexAddr(addr uint64) string {
	return fmt.Sprintf("0x%08x", addr)
}
