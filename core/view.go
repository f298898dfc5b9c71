// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph holding the vertices of keep that exist
// in g, and every edge of g with both endpoints kept. IDs absent from g are
// ignored. The input graph is not mutated.
//
// Complexity: O(K + Σdeg(k)) for K = len(keep).
func InducedSubgraph(g *Graph, keep []NodeID) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set := make(map[NodeID]struct{}, len(keep))
	for _, id := range keep {
		if _, ok := g.vertices[id]; ok {
			set[id] = struct{}{}
		}
	}

	out := NewGraph(WithCapacity(len(set)))
	for u := range set {
		out.addVertexLocked(u)
		for v := range g.adjacency[u] {
			if _, ok := set[v]; ok && u < v {
				out.addEdgeLocked(u, v)
			}
		}
	}

	return out
}

// Stats is a point-in-time summary of a graph.
type Stats struct {
	Vertices int
	Edges    int
	// MinDegree and MaxDegree are zero for an empty graph.
	MinDegree int
	MaxDegree int
}

// Snapshot computes Stats in a single pass.
// Complexity: O(V).
func (g *Graph) Snapshot() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := Stats{Vertices: len(g.vertices), Edges: g.edgeCount}
	first := true
	for _, nbrs := range g.adjacency {
		d := len(nbrs)
		if first || d < st.MinDegree {
			st.MinDegree = d
		}
		if first || d > st.MaxDegree {
			st.MaxDegree = d
		}
		first = false
	}

	return st
}
