package cachesim

// Line holds a single cache line's tag and coherence state. It carries
// no data payload — the simulator tracks only tags and MESI state, per
// spec. State transitions are total; legality is enforced by the MESI
// controller, not the line itself.
type Line struct {
	tag   uint64
	state MESIState
}

// Tag returns the line's stored tag. The value is undefined when the
// line is Invalid.
func (l Line) Tag() uint64 { return l.tag }

// State returns the line's current MESI state.
func (l Line) State() MESIState { return l.state }

// SetState mutates the line's MESI state in place.
func (l *Line) SetState(s MESIState) { l.state = s }

// IsValid reports whether the line holds a live copy.
func (l Line) IsValid() bool { return l.state != Invalid }

// IsModified reports whether the line is dirty and must be written
// back before it can be discarded.
func (l Line) IsModified() bool { return l.state == Modified }
