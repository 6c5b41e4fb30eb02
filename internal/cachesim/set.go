package cachesim

import "fmt"

// Set is one set-associative row: an array of ways plus the PLRU tree
// state over them. Sets are materialized lazily by the owning Cache;
// once built they persist until a full-cache clear.
type Set struct {
	ways    []Line
	plru    uint32 // A-1 bits, one per internal tree node
	numWays int
}

// NewSet builds a fresh, all-Invalid set with numWays ways. numWays
// must be a power of two in [1, 32]; the Cache guarantees this via the
// Geometry it was built from, so NewSet does not re-validate it.
func NewSet(numWays int) *Set {
	return &Set{
		ways:    make([]Line, numWays),
		numWays: numWays,
	}
}

// Way returns a copy of the line at the given way index. It returns
// ErrUsage for an out-of-range index — this is the indexable façade
// spec.md §4.3 requires over the per-way state.
func (s *Set) Way(way int) (Line, error) {
	if way < 0 || way >= s.numWays {
		return Line{}, fmt.Errorf("%w: way index %d out of range [0, %d)", ErrUsage, way, s.numWays)
	}
	return s.ways[way], nil
}

// SetWayState mutates the MESI state of the line at way in place. It
// returns ErrUsage for an out-of-range index.
func (s *Set) SetWayState(way int, state MESIState) error {
	if way < 0 || way >= s.numWays {
		return fmt.Errorf("%w: way index %d out of range [0, %d)", ErrUsage, way, s.numWays)
	}
	s.ways[way].SetState(state)
	return nil
}

// Search scans for tag among valid lines. When updateRecency is true
// the matched way is marked most-recently-used in the PLRU tree.
// Processor-originated accesses must pass true; snoop-originated
// accesses must pass false, so that snoops never perturb replacement
// order (spec.md §8 invariant 5).
func (s *Set) Search(tag uint64, updateRecency bool) (way int, ok bool) {
	for i := range s.ways {
		if s.ways[i].IsValid() && s.ways[i].Tag() == tag {
			if updateRecency {
				s.touch(i)
			}
			return i, true
		}
	}
	return 0, false
}

// Allocate installs (tag, initial) into the set, choosing the
// lowest-indexed invalid way if one exists, otherwise the PLRU victim.
// It returns the evicted line when a valid way was displaced, and the
// way the new line now occupies. The caller must only call Allocate
// after a miss (Search found no matching tag); as a defensive check
// against that discipline being violated, a pre-existing tag is
// overwritten in place rather than duplicated into a second way.
func (s *Set) Allocate(tag uint64, initial MESIState) (victim *Line, way int) {
	if dup, ok := s.Search(tag, false); ok {
		s.ways[dup] = Line{tag: tag, state: initial}
		s.touch(dup)
		return nil, dup
	}

	for i := range s.ways {
		if !s.ways[i].IsValid() {
			s.ways[i] = Line{tag: tag, state: initial}
			s.touch(i)
			return nil, i
		}
	}

	victimWay := s.plruVictim()
	evicted := s.ways[victimWay]
	s.ways[victimWay] = Line{tag: tag, state: initial}
	s.touch(victimWay)
	return &evicted, victimWay
}

// HasValidLine reports whether any way in the set holds a live copy.
func (s *Set) HasValidLine() bool {
	for i := range s.ways {
		if s.ways[i].IsValid() {
			return true
		}
	}
	return false
}

// NumWays returns the set's associativity.
func (s *Set) NumWays() int { return s.numWays }

// PLRUBits returns the raw PLRU tree state, for diagnostics (opcode 9).
func (s *Set) PLRUBits() uint32 { return s.plru }

func (s *Set) parent(node int) int { return (node - 1) / 2 }

// touch marks way as most-recently-used by walking from its leaf to
// the root, clearing or setting each ancestor's bit so that future
// victim selection is steered toward the opposite subtree.
func (s *Set) touch(way int) {
	if s.numWays == 1 {
		return
	}
	leaf := way + (s.numWays - 1)
	node := s.parent(leaf)
	s.orientAway(node, leaf)

	for node > 0 {
		child := node
		node = s.parent(node)
		s.orientAway(node, child)
	}
}

// orientAway sets node's bit so that a victim search starting at node
// would head away from child (child's subtree was just accessed).
func (s *Set) orientAway(node, child int) {
	if child == 2*node+1 { // child is the left side
		s.plru &^= 1 << uint(node)
	} else {
		s.plru |= 1 << uint(node)
	}
}

// plruVictim walks from the root following the bit at each internal
// node, returning the reached leaf's way index.
func (s *Set) plruVictim() int {
	if s.numWays == 1 {
		return 0
	}
	node := 0
	levels := 0
	for n := s.numWays; n > 1; n >>= 1 {
		levels++
	}
	for i := 0; i < levels; i++ {
		if s.plru&(1<<uint(node)) != 0 {
			node = 2*node + 1
		} else {
			node = 2*node + 2
		}
	}
	return node - (s.numWays - 1)
}
