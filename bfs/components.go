package bfs

import (
	"context"

	"github.com/katalvlaran/cliquegate/core"
)

// Components partitions g into connected components. Each component is
// listed in BFS order from its smallest id, and components are ordered by
// that smallest id.
//
// Complexity: O(V + E log Δ).
func Components(ctx context.Context, g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[core.NodeID]struct{}, g.VertexCount())
	var out [][]core.NodeID
	for _, id := range g.Vertices() {
		if _, ok := seen[id]; ok {
			continue
		}
		res, err := BFS(g, id, WithContext(ctx))
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = struct{}{}
		}
		out = append(out, res.Order)
	}

	return out, nil
}
