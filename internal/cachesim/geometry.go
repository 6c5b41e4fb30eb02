package cachesim

import (
	"fmt"
	"math/bits"
)

// Geometry is the immutable cache configuration derived at construction
// time. Once built it never changes; every Cache, Set, and address
// decomposition in the simulator is driven by the same Geometry value.
type Geometry struct {
	AddressWidth  uint // W, in bits
	Capacity      uint // C, in bytes
	LineSize      uint // L, in bytes
	Associativity uint // A, ways per set

	NumSets    uint // S = C / (L*A)
	OffsetBits uint // log2(L)
	IndexBits  uint // log2(S)
	TagBits    uint // W - IndexBits - OffsetBits
}

// Default geometry matches spec.md's defaults: 32-bit addresses, 16 MiB
// total capacity, 64-byte lines, 16-way associativity.
const (
	DefaultAddressWidth  uint = 32
	DefaultCapacity      uint = 16 * 1 << 20
	DefaultLineSize      uint = 64
	DefaultAssociativity uint = 16

	MinAssociativity uint = 1
	MaxAssociativity uint = 32
)

// NewGeometry validates and derives a Geometry from the raw parameters.
// It returns ErrConfiguration if any derived quantity is non-integral,
// non-power-of-two, or associativity falls outside [1, 32].
func NewGeometry(addressWidth, capacity, lineSize, associativity uint) (Geometry, error) {
	if associativity < MinAssociativity || associativity > MaxAssociativity {
		return Geometry{}, fmt.Errorf("%w: associativity %d outside [%d, %d]",
			ErrConfiguration, associativity, MinAssociativity, MaxAssociativity)
	}
	if !isPowerOfTwo(lineSize) {
		return Geometry{}, fmt.Errorf("%w: line size %d is not a power of two", ErrConfiguration, lineSize)
	}
	if !isPowerOfTwo(associativity) {
		return Geometry{}, fmt.Errorf("%w: associativity %d is not a power of two", ErrConfiguration, associativity)
	}

	denom := lineSize * associativity
	if denom == 0 || capacity%denom != 0 {
		return Geometry{}, fmt.Errorf("%w: capacity %d not divisible by line_size*associativity (%d)",
			ErrConfiguration, capacity, denom)
	}
	numSets := capacity / denom
	if !isPowerOfTwo(numSets) {
		return Geometry{}, fmt.Errorf("%w: derived set count %d is not a power of two", ErrConfiguration, numSets)
	}

	offsetBits := uint(bits.TrailingZeros(lineSize))
	indexBits := uint(bits.TrailingZeros(numSets))
	if offsetBits+indexBits > addressWidth {
		return Geometry{}, fmt.Errorf("%w: offset+index bits (%d) exceed address width %d",
			ErrConfiguration, offsetBits+indexBits, addressWidth)
	}
	tagBits := addressWidth - indexBits - offsetBits

	return Geometry{
		AddressWidth:  addressWidth,
		Capacity:      capacity,
		LineSize:      lineSize,
		Associativity: associativity,
		NumSets:       numSets,
		OffsetBits:    offsetBits,
		IndexBits:     indexBits,
		TagBits:       tagBits,
	}, nil
}

func isPowerOfTwo(v uint) bool {
	return v != 0 && v&(v-1) == 0
}

// AddressFields is the immutable decomposition of a memory address into
// tag, index, and offset. Offset is never consulted for coherence; it
// exists only to document line granularity.
type AddressFields struct {
	Tag    uint64
	Index  uint64
	Offset uint64
}

// Decompose splits addr into (tag, index, offset) per the geometry's
// bit widths. Addresses wider than AddressWidth are truncated; input
// validation is the trace reader's responsibility, not the decoder's.
func (g Geometry) Decompose(addr uint64) AddressFields {
	if g.AddressWidth < 64 {
		addr &= (uint64(1) << g.AddressWidth) - 1
	}

	offsetMask := (uint64(1) << g.OffsetBits) - 1
	indexMask := (uint64(1) << g.IndexBits) - 1

	offset := addr & offsetMask
	index := (addr >> g.OffsetBits) & indexMask
	tag := addr >> (g.OffsetBits + g.IndexBits)

	return AddressFields{Tag: tag, Index: index, Offset: offset}
}
