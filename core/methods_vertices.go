// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and NeighborIDs() return IDs sorted ascending.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrNegativeNodeID: if id < 0.
//   - ErrGraphFrozen: if the graph was sealed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id NodeID) error {
	if id < 0 {
		return ErrNegativeNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrGraphFrozen
	}
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id and bootstraps its adjacency bucket.
// Caller holds mu for writing.
func (g *Graph) addVertexLocked(id NodeID) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[NodeID]struct{})
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VertexCount returns the size of the node set.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// MaxNodeID returns the largest vertex ID and true, or (-1, false) for an
// empty graph.
// Complexity: O(V).
func (g *Graph) MaxNodeID() (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.vertices) == 0 {
		return -1, false
	}
	max := NodeID(-1)
	for id := range g.vertices {
		if id > max {
			max = id
		}
	}

	return max, true
}

// NeighborIDs returns the sorted neighbors of id.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(d log d) where d = deg(id).
func (g *Graph) NeighborIDs(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]NodeID, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}
