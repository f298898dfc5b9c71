// SPDX-License-Identifier: MIT
// Package: cliquegate/builder
//
// impl_complete.go — complete subgraphs over an id range.
//
// Contract:
//   • The node set is exactly the range; the edge set is every unordered pair
//     drawn from it (a range of k ids yields C(k,2) edges).
//   • Pairs are emitted in lexicographic (i,j), i<j order.
//   • Clique is pure: a fresh graph per call, deterministic.
//
// Complexity:
//   • Time: O(k) vertices + O(k²) edges. Space: O(k) for the id slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquegate/core"
)

// Clique returns the complete graph over r.
// An empty range yields an empty graph. Every range from Allocate is valid;
// a negative Start or Len is a programmer error and panics. Use Complete for
// a variant that reports bad ranges as ErrInvalidArgument.
func Clique(r IDRange) *core.Graph {
	if r.Start < 0 || r.Len < 0 {
		panic(fmt.Sprintf("builder: Clique(start=%d, len=%d)", r.Start, r.Len))
	}
	g := core.NewGraph(core.WithCapacity(r.Len))
	if err := addRangeClique(g, r); err != nil {
		// Unreachable for a fresh graph over non-negative ids.
		panic(builderErrorf(MethodClique, "%w", err))
	}

	return g
}

// Complete returns a Constructor that adds the complete graph over r to the
// target graph. Existing vertices and edges are kept.
func Complete(r IDRange) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if r.Start < 0 || r.Len < 0 {
			return builderErrorf(MethodClique, "range start=%d len=%d: %w", r.Start, r.Len, ErrInvalidArgument)
		}
		if err := addRangeClique(g, r); err != nil {
			return builderErrorf(MethodClique, "range start=%d len=%d: %w", r.Start, r.Len, err)
		}

		return nil
	}
}

// addRangeClique adds every vertex of r, then every pair of r, to g.
func addRangeClique(g *core.Graph, r IDRange) error {
	ids := r.IDs()
	if err := addVertices(g, ids); err != nil {
		return err
	}

	return addCompleteEdges(g, ids)
}
