// Package core provides the in-memory simple undirected Graph used by the
// clique-gate generator, with a minimal, composable API surface.
//
// The Graph G = (V,E) is a set of NodeIDs plus a set of unordered Edges:
//
//   - No self-loops (AddEdge(v,v) → ErrLoopNotAllowed)
//   - No parallel edges: adding an existing pair is a silent no-op, so the
//     edge set behaves as a set and duplicates collapse
//   - Every endpoint of an edge is a vertex (AddEdge auto-adds endpoints)
//   - Constant-time edge membership via mirrored maps:
//     adjacency[u][v] = struct{}{} and adjacency[v][u] = struct{}{}
//   - One sync.RWMutex guards the whole structure
//
// Deterministic iteration: Vertices(), NeighborIDs() and Edges() return
// sorted results, so anything rendered from a Graph is reproducible.
//
// Core Methods:
//
//	AddVertex(id NodeID) error            // O(1)
//	AddEdge(a, b NodeID) error            // O(1)
//	HasVertex(id) / HasEdge(a, b) bool    // O(1)
//	Vertices() []NodeID                   // O(V·log V)
//	Edges() []Edge                        // O(E·log E), U<V
//	NeighborIDs(id) ([]NodeID, error)     // O(d·log d)
//	Degree(id) (int, error)               // O(1)
//	VertexCount() / EdgeCount() int       // O(1)
//	MaxNodeID() (NodeID, bool)            // O(V)
//	Merge(src *Graph) error               // O(V_src+E_src)
//	Clone() *Graph                        // O(V+E)
//	InducedSubgraph(g, keep) *Graph       // O(K+Σdeg)
//	Freeze() / Frozen()                   // seal against mutation
//
// Lifecycle: a generator owns a Graph exclusively while building it, then
// calls Freeze and hands it out. A frozen Graph rejects AddVertex, AddEdge
// and Merge with ErrGraphFrozen and is safe for concurrent readers.
//
// Errors:
//
//	ErrNegativeNodeID – node ID below zero
//	ErrVertexNotFound – missing vertex
//	ErrLoopNotAllowed – self-loop
//	ErrGraphFrozen    – mutation after Freeze
package core
