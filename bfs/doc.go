// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// It is used to audit generated clique-gate graphs: Components counts the
// pieces a topology falls into (a unit gate leaves one half empty and can
// disconnect components), and PathTo shows the route a component takes
// through a gate clique into its neighbor.
//
// Determinism
//
//	core.Graph.NeighborIDs returns ids sorted ascending and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log Δ)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	path, err := res.PathTo(7)
//	parts, err := bfs.Components(ctx, g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for an unreached vertex.
//   - Wrapped errors returned by OnVisit.
package bfs
