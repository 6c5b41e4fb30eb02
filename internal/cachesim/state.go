package cachesim

// MESIState is one of the four MESI coherence states. Invalid is the
// zero value and the initial state of every line.
type MESIState uint8

const (
	Invalid MESIState = iota
	Shared
	Exclusive
	Modified
)

func (s MESIState) String() string {
	switch s {
	case Invalid:
		return "Invalid"
	case Shared:
		return "Shared"
	case Exclusive:
		return "Exclusive"
	case Modified:
		return "Modified"
	default:
		return "Unknown"
	}
}

// BusOp is a bus operation emitted by the MESI controller.
type BusOp uint8

const (
	BusRead BusOp = iota
	BusWrite
	BusInvalidate
	BusRWIM
)

func (b BusOp) String() string {
	switch b {
	case BusRead:
		return "Read"
	case BusWrite:
		return "Write"
	case BusInvalidate:
		return "Invalidate"
	case BusRWIM:
		return "RWIM"
	default:
		return "Unknown"
	}
}

// SnoopResult is the aggregate peer response to a bus operation.
type SnoopResult uint8

const (
	NoHit SnoopResult = iota
	Hit
	HitModified
)

func (r SnoopResult) String() string {
	switch r {
	case NoHit:
		return "NoHit"
	case Hit:
		return "Hit"
	case HitModified:
		return "HitModified"
	default:
		return "Unknown"
	}
}

// CacheMessage is a control message sent to L1 to preserve inclusion.
type CacheMessage uint8

const (
	GetLine CacheMessage = iota
	SendLine
	InvalidateLine
	EvictLine
)

func (m CacheMessage) String() string {
	switch m {
	case GetLine:
		return "GetLine"
	case SendLine:
		return "SendLine"
	case InvalidateLine:
		return "InvalidateLine"
	case EvictLine:
		return "EvictLine"
	default:
		return "Unknown"
	}
}
