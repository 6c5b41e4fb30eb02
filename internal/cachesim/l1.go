package cachesim

// L1Port is the external collaborator modeling the L1 cache above this
// LLC. Its only contract is accepting fire-and-forget control messages
// that preserve inclusion between L1 and this cache.
type L1Port interface {
	Send(msg CacheMessage, addr uint64)
}

// StdL1Port is the default L1Port: stateless beyond a Sink, logging
// every message at Normal verbosity in the format spec.md §6 requires.
type StdL1Port struct {
	log Sink
}

// NewStdL1Port builds an L1Port that logs through log.
func NewStdL1Port(log Sink) *StdL1Port {
	return &StdL1Port{log: log}
}

func (p *StdL1Port) Send(msg CacheMessage, addr uint64) {
	p.log.Normal("L2: %s, Address: %s", msg, hexAddr(addr))
}
