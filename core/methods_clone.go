// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep, mutable copy of the Graph: vertices, edges and adjacency.
// Cloning a frozen graph yields an unfrozen copy.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.vertices)))
	for id, nbrs := range g.adjacency {
		clone.vertices[id] = struct{}{}
		cp := make(map[NodeID]struct{}, len(nbrs))
		for v := range nbrs {
			cp[v] = struct{}{}
		}
		clone.adjacency[id] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Merge copies every vertex and edge of src into g. Identifiers shared by
// both graphs are merged, not renamed.
//
// Errors:
//   - ErrGraphFrozen: if g was sealed.
//
// Complexity: O(V_src + E_src).
func (g *Graph) Merge(src *Graph) error {
	if src == g {
		return nil
	}
	src.mu.RLock()
	defer src.mu.RUnlock()
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrGraphFrozen
	}

	for u, nbrs := range src.adjacency {
		g.addVertexLocked(u)
		for v := range nbrs {
			if u < v {
				g.addEdgeLocked(u, v)
			}
		}
	}

	return nil
}
