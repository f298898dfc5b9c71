// SPDX-License-Identifier: MIT
// Package core defines the central Graph, NodeID and Edge types,
// and provides lock-guarded primitives for building, querying, and cloning graphs.
//
// This file declares NodeID, Edge, Graph, the sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNegativeNodeID - node identifier is below zero.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop requested (graphs are simple).
//	ErrGraphFrozen    - mutation attempted after Freeze.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeID indicates that a NodeID below zero was supplied.
	ErrNegativeNodeID = errors.New("core: node ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrGraphFrozen indicates a mutation on a graph sealed by Freeze.
	ErrGraphFrozen = errors.New("core: graph is frozen")
)

// NodeID identifies a vertex. Valid identifiers are non-negative and unique
// within one Graph.
type NodeID int

// String renders the identifier in base 10.
func (id NodeID) String() string { return strconv.Itoa(int(id)) }

// Edge is an unordered pair of distinct vertices.
//
// Edges produced by the Graph are normalized so that U < V; two Edge values
// describing the same pair therefore compare equal with ==.
type Edge struct {
	U NodeID
	V NodeID
}

// NewEdge returns the normalized edge {a,b}.
func NewEdge(a, b NodeID) Edge {
	if b < a {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Other returns the endpoint of e opposite to id. The result is undefined
// when id is not an endpoint of e.
func (e Edge) Other(id NodeID) NodeID {
	if e.U == id {
		return e.V
	}

	return e.U
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for roughly n vertices.
// Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make(map[NodeID]struct{}, n)
			g.adjacency = make(map[NodeID]map[NodeID]struct{}, n)
		}
	}
}

// Graph is a simple undirected graph: a set of NodeIDs plus a set of Edges.
//
// Every NodeID referenced by an edge is present in the vertex set: AddEdge
// registers missing endpoints before linking them. Duplicate edges collapse.
// mu guards every field; frozen is set once by Freeze and never cleared.
type Graph struct {
	mu sync.RWMutex

	frozen bool

	// vertices is the node set.
	vertices map[NodeID]struct{}

	// adjacency[u][v] is present iff {u,v} is an edge; mirrored for both endpoints.
	adjacency map[NodeID]map[NodeID]struct{}

	// edgeCount counts unordered pairs (each mirrored pair once).
	edgeCount int
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1) (O(n) when WithCapacity(n) is supplied).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[NodeID]struct{}),
		adjacency: make(map[NodeID]map[NodeID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Freeze seals the graph. Afterwards every mutator returns ErrGraphFrozen;
// queries keep working and are safe for concurrent readers.
// Freeze is idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}
