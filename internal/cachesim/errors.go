// Package cachesim implements the coupled LLC storage, PLRU replacement,
// and MESI coherence engine described by the simulator's trace-driven
// event model.
package cachesim

import "errors"

// Error taxonomy for the simulator. Configuration and I/O errors are
// fatal and propagate to the process exit code. Usage errors indicate a
// programmer mistake (an out-of-range way index) rather than bad trace
// input. Protocol-Inconsistency and Trace-Format errors are always
// recovered locally: the caller logs a warning and continues.
var (
	// ErrConfiguration reports a bad cache geometry or CLI/.env value.
	ErrConfiguration = errors.New("cachesim: configuration error")

	// ErrUsage reports an out-of-range way index passed to a set accessor.
	ErrUsage = errors.New("cachesim: usage error")

	// ErrProtocolInconsistency reports a snoop arriving in a state/opcode
	// combination impossible under MESI. Never fatal.
	ErrProtocolInconsistency = errors.New("cachesim: protocol inconsistency")

	// ErrTraceFormat reports a malformed trace record. Never fatal.
	ErrTraceFormat = errors.New("cachesim: malformed trace record")

	// ErrIO reports a failure opening or reading the trace file. Fatal.
	ErrIO = errors.New("cachesim: i/o error")
)
