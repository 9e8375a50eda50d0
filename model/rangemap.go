package model

import (
	"fmt"
	"math/bits"
)

// RangeMap translates every value of its domain by a constant: v maps to
// target + (v - domain.Start()).
type RangeMap struct {
	domain Range
	target uint64
}

// NewRangeMap maps [source, source+size) onto [target, target+size).
func NewRangeMap(source, size, target uint64) (RangeMap, error) {
	domain, err := NewRange(source, size)
	if err != nil {
		return RangeMap{}, err
	}
	if _, carry := bits.Add64(target, size, 0); carry != 0 {
		return RangeMap{}, fmt.Errorf("%w: target [%d, +%d)", ErrOverflow, target, size)
	}
	return RangeMap{domain: domain, target: target}, nil
}

// MustNewRangeMap is like NewRangeMap but panics on invalid input.
func MustNewRangeMap(source, size, target uint64) RangeMap {
	m, err := NewRangeMap(source, size, target)
	if err != nil {
		panic(err)
	}
	return m
}

func (m RangeMap) Domain() Range {
	return m.domain
}

func (m RangeMap) Target() uint64 {
	return m.target
}

func (m RangeMap) Contains(v uint64) bool {
	return m.domain.Contains(v)
}

// Get returns the image of v. v must be in the domain of m; callers check Contains
// first, so a miss here is a bug and panics.
func (m RangeMap) Get(v uint64) uint64 {
	offset, ok := m.domain.Offset(v)
	if !ok {
		panic(fmt.Errorf("%w: %d not in %s", ErrOutOfDomain, v, m.domain))
	}
	return m.target + offset
}

// Apply splits r against the domain of m.
//
// unmapped holds the parts of r outside the domain, unchanged. mapped holds the part
// inside the domain, translated. Together they cover every value of r exactly once.
func (m RangeMap) Apply(r Range) (unmapped, mapped []Range) {
	d := m.domain
	if !d.Overlaps(r) {
		return []Range{r}, nil
	}

	startIn, endIn := d.Contains(r.start), d.Contains(r.End())
	switch {
	case startIn && endIn:
		return nil, []Range{r.Translate(m.Get(r.start))}
	case !startIn && endIn:
		// d covers the tail of r.
		head := MustNewRange(r.start, d.start-r.start)
		tail := MustNewRange(m.target, r.End()-d.start+1)
		return []Range{head}, []Range{tail}
	case startIn && !endIn:
		// d covers the head of r.
		head := MustNewRange(m.Get(r.start), d.End()-r.start+1)
		tail := MustNewRange(d.End()+1, r.End()-d.End())
		return []Range{tail}, []Range{head}
	default:
		// d lies strictly inside r.
		before := MustNewRange(r.start, d.start-r.start)
		after := MustNewRange(d.End()+1, r.End()-d.End())
		return []Range{before, after}, []Range{d.Translate(m.target)}
	}
}

func (m RangeMap) String() string {
	return fmt.Sprintf("%s -> %d", m.domain, m.target)
}
