package cachesim

// Opcode is a trace record's command, decoded from the raw integer in
// the trace file (spec.md §6).
type Opcode int

const (
	OpL1DataRead      Opcode = 0
	OpL1DataWrite     Opcode = 1
	OpL1InstRead      Opcode = 2
	OpSnoopRead       Opcode = 3
	OpSnoopWrite      Opcode = 4
	OpSnoopRWIM       Opcode = 5
	OpSnoopInvalidate Opcode = 6
	OpClearCache      Opcode = 8
	OpPrintCache      Opcode = 9
	OpUnknown         Opcode = -1
)

// DecodeOpcode maps a raw trace integer to an Opcode, returning
// OpUnknown for 7 or any value outside the known set.
func DecodeOpcode(raw int) Opcode {
	switch raw {
	case 0, 1, 2, 3, 4, 5, 6, 8, 9:
		return Opcode(raw)
	default:
		return OpUnknown
	}
}

// Dispatcher decodes trace commands into calls on a Cache. Unknown
// opcodes are logged at Debug level and otherwise ignored.
type Dispatcher struct {
	cache *Cache
	log   Sink
}

// NewDispatcher builds a Dispatcher routing into cache, logging unknown
// opcodes through log.
func NewDispatcher(cache *Cache, log Sink) *Dispatcher {
	return &Dispatcher{cache: cache, log: log}
}

// Dispatch routes a single decoded trace record into the Cache. addr is
// ignored for OpClearCache and OpPrintCache.
func (d *Dispatcher) Dispatch(op Opcode, addr uint64) {
	switch op {
	case OpL1DataRead, OpL1InstRead:
		d.cache.PrRead(addr)
	case OpL1DataWrite:
		d.cache.PrWrite(addr)
	case OpSnoopRead:
		d.cache.HandleSnoop(BusRead, addr)
	case OpSnoopWrite:
		d.cache.HandleSnoop(BusWrite, addr)
	case OpSnoopRWIM:
		d.cache.HandleSnoop(BusRWIM, addr)
	case OpSnoopInvalidate:
		d.cache.HandleSnoop(BusInvalidate, addr)
	case OpClearCache:
		d.cache.Clear()
	case OpPrintCache:
		d.cache.PrintValidLines()
	default:
		d.log.Debug("unknown opcode: %d", op)
	}
}
