// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (U,V) ascending.
// Concurrency:
//   - Mutations under mu write lock; read queries under mu read lock.

package core

import "sort"

// AddEdge links a and b with an undirected edge, adding missing endpoints.
// Re-adding an existing pair is a no-op, so the edge set behaves as a set.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Lock mu, reject frozen graphs.
//  3. Register endpoints, then mirror adjacency a↔b.
//
// Errors:
//   - ErrNegativeNodeID, ErrLoopNotAllowed, ErrGraphFrozen.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b NodeID) error {
	if a < 0 || b < 0 {
		return ErrNegativeNodeID
	}
	if a == b {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrGraphFrozen
	}
	g.addEdgeLocked(a, b)

	return nil
}

// addEdgeLocked inserts {a,b}; a != b and both non-negative are assumed.
// Caller holds mu for writing.
func (g *Graph) addEdgeLocked(a, b NodeID) {
	g.addVertexLocked(a)
	g.addVertexLocked(b)
	if _, exists := g.adjacency[a][b]; exists {
		return
	}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.edgeCount++
}

// HasEdge reports whether {a,b} is an edge. Order of arguments is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Edges returns all edges normalized (U<V) and sorted by (U,V) ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of unordered edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// sortEdges orders edges lexicographically by (U,V).
func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].U != es[j].U {
			return es[i].U < es[j].U
		}
		return es[i].V < es[j].V
	})
}
