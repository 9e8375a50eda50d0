package model

import (
	"fmt"
	"math/bits"
)

// Range is the set of integers [start, start+size). A Range is never empty.
type Range struct {
	start uint64
	size  uint64
}

// NewRange returns the range [start, start+size).
//
// size must be positive and start+size must fit in uint64, so that End()+1 never wraps.
func NewRange(start, size uint64) (Range, error) {
	if size == 0 {
		return Range{}, fmt.Errorf("%w: [%d, +0)", ErrInvalidRange, start)
	}
	if _, carry := bits.Add64(start, size, 0); carry != 0 {
		return Range{}, fmt.Errorf("%w: range [%d, +%d)", ErrOverflow, start, size)
	}
	return Range{start: start, size: size}, nil
}

// MustNewRange is like NewRange but panics on invalid input.
func MustNewRange(start, size uint64) Range {
	r, err := NewRange(start, size)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Range) Start() uint64 {
	return r.start
}

func (r Range) Size() uint64 {
	return r.size
}

// End returns the last value in the range.
func (r Range) End() uint64 {
	return r.start + r.size - 1
}

func (r Range) Contains(v uint64) bool {
	return r.start <= v && v-r.start < r.size
}

// Overlaps reports whether the start or end of either range lies within the other.
func (r Range) Overlaps(other Range) bool {
	return r.containsEdges(other) || other.containsEdges(r)
}

func (r Range) containsEdges(other Range) bool {
	return r.Contains(other.start) || r.Contains(other.End())
}

// Offset returns the distance of v from the start of the range, or false if v is
// outside of it.
func (r Range) Offset(v uint64) (uint64, bool) {
	if !r.Contains(v) {
		return 0, false
	}
	return v - r.start, true
}

// Translate returns a range of the same size starting at to.
func (r Range) Translate(to uint64) Range {
	return MustNewRange(to, r.size)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.start, r.End())
}
