// Package builder provides internal helper functions used by the
// clique, merge and wiring stages.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the failing call for uniform reporting.
package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquegate/core"
)

// addVertices inserts every id into g. Re-adding existing vertices is a
// no-op in core.Graph.
//
// Complexity: O(len(ids)) time, O(1) extra space.
func addVertices(g *core.Graph, ids []core.NodeID) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("addVertices: AddVertex(%d): %w", id, err)
		}
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids.
//
// Complexity: O(m²) time where m = len(ids), O(1) extra space.
func addCompleteEdges(g *core.Graph, ids []core.NodeID) error {
	var (
		i, j int
		u, v core.NodeID
	)
	for i = 0; i < len(ids); i++ {
		u = ids[i]
		// inner loop over subsequent IDs to avoid duplicates
		for j = i + 1; j < len(ids); j++ {
			v = ids[j]
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("addCompleteEdges: AddEdge(%d-%d): %w", u, v, err)
			}
		}
	}

	return nil
}

// halfSizes splits a gate of size g into ⌊g/2⌋ and g−⌊g/2⌋ nodes.
func halfSizes(g int) (first, second int) {
	first = g / 2

	return first, g - first
}

// splitGate returns the first ⌊len/2⌋ ids and the remainder. Both halves
// alias ids; callers must not append to them.
func splitGate(ids []core.NodeID) (first, second []core.NodeID) {
	h, _ := halfSizes(len(ids))

	return ids[:h], ids[h:]
}
