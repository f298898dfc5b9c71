// SPDX-License-Identifier: MIT
// Package: cliquegate/builder
//
// wiring.go — attaching one gate to every unordered pair of components.
//
// Contract:
//   • Pairings(n) enumerates (i,j) for i in [0,n−2], j in [i+1,n−1]; the k-th
//     pairing owns gate k (explicit cursor, not list position coupling).
//   • For pairing (src,dest): half1 = first ⌊g/2⌋ gate ids ascending, half2 =
//     the rest. half1[k] links to the k-th src id, half2[k] to the k-th dest
//     id, both ascending.
//   • Odd g: half2 is one node larger and attaches to dest, the later component.
//   • A half longer than its target component fails with ErrSizeMismatch
//     before any edge of any pairing is added.
//
// Complexity:
//   • Time: O(C(n,2)·(g + s log s)) dominated by sorted vertex listing.

package builder

import (
	"github.com/katalvlaran/cliquegate/core"
)

// Pairing is one unordered pair of components and the gate assigned to it.
// Src < Dest always holds; Gate indexes the gate list.
type Pairing struct {
	Src  int
	Dest int
	Gate int
}

// Pairings returns the pairings of n components in wiring order.
// It is empty for n < 2.
func Pairings(n int) []Pairing {
	out := make([]Pairing, 0, PairCount(n))
	cursor := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pairing{Src: i, Dest: j, Gate: cursor})
			cursor++
		}
	}

	return out
}

// Wire adds the cross edges between gates and components to g and returns
// them normalized, in insertion order. components and gates are the built
// cliques ordered by allocation index; their ids are read ascending.
//
// Errors:
//   - ErrInvalidArgument: len(gates) differs from the number of pairings.
//   - ErrSizeMismatch: a gate half exceeds its target component. All
//     pairings are checked first, so g is unchanged on this error.
//   - Any core error from g (e.g. core.ErrGraphFrozen), wrapped.
func Wire(g *core.Graph, components, gates []*core.Graph) ([]core.Edge, error) {
	pairings := Pairings(len(components))
	if len(gates) != len(pairings) {
		return nil, builderErrorf(MethodWire, "%d gates for %d pairings: %w",
			len(gates), len(pairings), ErrInvalidArgument)
	}

	for i, c := range components {
		if c == nil {
			return nil, builderErrorf(MethodWire, "component %d is nil: %w", i, ErrInvalidArgument)
		}
	}
	for k, gt := range gates {
		if gt == nil {
			return nil, builderErrorf(MethodWire, "gate %d is nil: %w", k, ErrInvalidArgument)
		}
	}

	// Every pairing must fit before the first edge is added, so a rejected
	// call leaves g untouched.
	for _, p := range pairings {
		if err := checkPairingFit(p, len(components), components, gates); err != nil {
			return nil, err
		}
	}

	cross := make([]core.Edge, 0, len(pairings)*gateSizeHint(gates))
	var err error
	for _, p := range pairings {
		if cross, err = wirePairing(g, p, components, gates, cross); err != nil {
			return nil, err
		}
	}

	return cross, nil
}

// checkPairingFit reports ErrSizeMismatch when a half of gates[p.Gate] is
// longer than the component it attaches to.
func checkPairingFit(p Pairing, n int, components, gates []*core.Graph) error {
	gateSize := gates[p.Gate].VertexCount()
	half1, half2 := halfSizes(gateSize)
	srcSize := components[p.Src].VertexCount()
	destSize := components[p.Dest].VertexCount()

	if half1 > srcSize || half2 > destSize {
		return paramErrorf(MethodWire, n, min(srcSize, destSize), gateSize,
			ErrSizeMismatch, "pairing (%d,%d) gate %d: halves %d/%d exceed component sizes %d/%d",
			p.Src, p.Dest, p.Gate, half1, half2, srcSize, destSize)
	}

	return nil
}

// wirePairing links gates[p.Gate] to components p.Src and p.Dest and appends
// the new edges to cross. The fit was checked by Wire.
func wirePairing(g *core.Graph, p Pairing, components, gates []*core.Graph, cross []core.Edge) ([]core.Edge, error) {
	half1, half2 := splitGate(gates[p.Gate].Vertices())
	srcNodes := components[p.Src].Vertices()
	destNodes := components[p.Dest].Vertices()

	var err error
	if cross, err = linkByIndex(g, half1, srcNodes, cross); err != nil {
		return nil, builderErrorf(MethodWire, "pairing (%d,%d): %w", p.Src, p.Dest, err)
	}
	if cross, err = linkByIndex(g, half2, destNodes, cross); err != nil {
		return nil, builderErrorf(MethodWire, "pairing (%d,%d): %w", p.Src, p.Dest, err)
	}

	return cross, nil
}

// linkByIndex adds edge(half[k], targets[k]) for every k < len(half).
// len(half) ≤ len(targets) is checked by the caller.
func linkByIndex(g *core.Graph, half, targets []core.NodeID, cross []core.Edge) ([]core.Edge, error) {
	for k, id := range half {
		if err := g.AddEdge(id, targets[k]); err != nil {
			return cross, err
		}
		cross = append(cross, core.NewEdge(id, targets[k]))
	}

	return cross, nil
}

// gateSizeHint returns the vertex count of the first gate, or zero.
func gateSizeHint(gates []*core.Graph) int {
	if len(gates) == 0 {
		return 0
	}

	return gates[0].VertexCount()
}

