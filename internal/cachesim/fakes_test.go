package cachesim

import "fmt"

// fakeBus is a scripted BusPort: SnoopResult is driven by the same
// address-LSB rule as StdBusPort, but every call is recorded so tests
// can assert exact call order and counts.
type fakeBus struct {
	ops    []BusOp
	addrs  []uint64
	puts   []SnoopResult
	script map[uint64]SnoopResult
}

func newFakeBus() *fakeBus {
	return &fakeBus{script: map[uint64]SnoopResult{}}
}

func (b *fakeBus) BusOperation(op BusOp, addr uint64) {
	b.ops = append(b.ops, op)
	b.addrs = append(b.addrs, addr)
}

func (b *fakeBus) SnoopResult(addr uint64) SnoopResult {
	if r, ok := b.script[addr]; ok {
		return r
	}
	switch addr & 0b11 {
	case 0b00:
		return Hit
	case 0b01:
		return HitModified
	default:
		return NoHit
	}
}

func (b *fakeBus) PutSnoopResult(addr uint64, result SnoopResult) {
	b.puts = append(b.puts, result)
}

// fakeL1 records every message sent to it, in order.
type fakeL1 struct {
	msgs  []CacheMessage
	addrs []uint64
}

func (l *fakeL1) Send(msg CacheMessage, addr uint64) {
	l.msgs = append(l.msgs, msg)
	l.addrs = append(l.addrs, addr)
}

// fakeSink discards everything; tests that need to assert on warnings
// use warnSink instead.
type fakeSink struct{}

func (fakeSink) Normal(string, ...any) {}
func (fakeSink) Debug(string, ...any)  {}
func (fakeSink) Warn(string, ...any)   {}
func (fakeSink) Always(string, ...any) {}

type warnSink struct {
	fakeSink
	warnings []string
}

func (s *warnSink) Warn(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}
