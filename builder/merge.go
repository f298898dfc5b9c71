// SPDX-License-Identifier: MIT
// Package: cliquegate/builder
//
// merge.go — union of node-disjoint subgraphs.
//
// Contract:
//   • The result holds the union of all node sets and all edge sets.
//   • Callers guarantee disjointness (Allocate does). Colliding ids merge
//     into one vertex; this is not detected.
//   • nil inputs are skipped.

package builder

import "github.com/katalvlaran/cliquegate/core"

// Merge returns a fresh graph that is the union of graphs.
// Complexity: O(ΣV + ΣE).
func Merge(graphs ...*core.Graph) (*core.Graph, error) {
	size := 0
	for _, part := range graphs {
		if part != nil {
			size += part.VertexCount()
		}
	}

	out := core.NewGraph(core.WithCapacity(size))
	if err := mergeInto(out, graphs); err != nil {
		return nil, err
	}

	return out, nil
}

// mergeInto copies every non-nil part into dst in order.
func mergeInto(dst *core.Graph, parts []*core.Graph) error {
	for i, part := range parts {
		if part == nil {
			continue
		}
		if err := dst.Merge(part); err != nil {
			return builderErrorf(MethodMerge, "part %d: %w", i, err)
		}
	}

	return nil
}
