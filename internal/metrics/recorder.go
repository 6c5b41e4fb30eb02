// Package metrics exposes the simulator's Statistics counters to an
// external metrics system. The simulator's own hit-ratio computation
// never depends on this package — it exists purely so a caller can
// observe the same counters through Prometheus if it wants to.
package metrics

// Recorder receives one increment per statistics event. Implementations
// must be safe to call from the single-threaded simulation loop; no
// concurrency guarantees are required or provided.
type Recorder interface {
	IncReads()
	IncWrites()
	IncHits()
	IncMisses()
}

// Noop is a Recorder that discards every increment. It is the default
// Recorder when no external metrics system is wired in.
type Noop struct{}

func (Noop) IncReads()  {}
func (Noop) IncWrites() {}
func (Noop) IncHits()   {}
func (Noop) IncMisses() {}
