// SPDX-License-Identifier: MIT
// Package: cliquegate/builder
//
// allocator.go — partitioning of the NodeID space into gate and component ranges.
//
// Contract:
//   • C(n,2) gate ranges of length g come first, starting at 0, back-to-back in
//     pairing enumeration order (see Pairings).
//   • n component ranges of length s follow immediately, back-to-back, in
//     component index order.
//   • Together the ranges partition [0, TotalNodes()) with no gaps or overlaps.
//   • Invalid parameters yield a *ParamError (ErrInvalidArgument) and a zero
//     Allocation; nothing partial is returned.
//
// Complexity:
//   • Time: O(C(n,2) + n) ranges. Space: same.

package builder

import "github.com/katalvlaran/cliquegate/core"

// IDRange is the contiguous block of NodeIDs [Start, Start+Len).
type IDRange struct {
	Start core.NodeID
	Len   int
}

// End returns the first NodeID after the range (exclusive bound).
func (r IDRange) End() core.NodeID { return r.Start + core.NodeID(r.Len) }

// Contains reports whether id lies in the range.
func (r IDRange) Contains(id core.NodeID) bool { return id >= r.Start && id < r.End() }

// IDs lists the range in ascending order.
func (r IDRange) IDs() []core.NodeID {
	ids := make([]core.NodeID, r.Len)
	for i := range ids {
		ids[i] = r.Start + core.NodeID(i)
	}

	return ids
}

// Allocation is the id bookkeeping of one clique-gate graph.
// GateRanges[k] belongs to the k-th pairing of Pairings(Components).
type Allocation struct {
	Components    int
	ComponentSize int
	GateSize      int

	GateRanges      []IDRange
	ComponentRanges []IDRange
}

// TotalNodes returns n·(n−1)/2·g + n·s.
func (a Allocation) TotalNodes() int {
	return PairCount(a.Components)*a.GateSize + a.Components*a.ComponentSize
}

// PairCount returns C(n,2), the number of unordered component pairs
// and therefore of gates. It is zero for n < 2.
func PairCount(n int) int {
	if n < MinComponentsForGates {
		return 0
	}

	return n * (n - 1) / 2
}

// Allocate partitions the id space for n components of size s joined by
// gates of size g.
func Allocate(n, s, g int) (Allocation, error) {
	if err := validateParams(MethodAllocate, n, s, g); err != nil {
		return Allocation{}, err
	}

	pairs := PairCount(n)
	a := Allocation{
		Components:      n,
		ComponentSize:   s,
		GateSize:        g,
		GateRanges:      make([]IDRange, pairs),
		ComponentRanges: make([]IDRange, n),
	}

	var next core.NodeID
	for k := 0; k < pairs; k++ {
		a.GateRanges[k] = IDRange{Start: next, Len: g}
		next += core.NodeID(g)
	}
	for c := 0; c < n; c++ {
		a.ComponentRanges[c] = IDRange{Start: next, Len: s}
		next += core.NodeID(s)
	}

	return a, nil
}
