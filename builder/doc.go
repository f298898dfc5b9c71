// Package builder synthesizes clique-gate graphs: several fully connected
// big components, every unordered pair of them bridged by a small fully
// connected gate whose nodes are split in two halves, one half attached to
// each side.
//
// The package offers the following key components:
//
//   - Id allocation:
//     – Allocate:   disjoint, contiguous IDRanges for gates, then components.
//     – PairCount:  C(n,2), the number of gates.
//   - Subgraph construction:
//     – Clique:     the complete graph over one IDRange.
//     – Complete:   the same as a Constructor for BuildGraph.
//     – Merge:      union of node-disjoint graphs.
//   - Gate wiring:
//     – Pairings:   (i,j), i<j, in nested-loop order with an explicit gate cursor.
//     – Wire:       connects each gate half to the leading ids of its component.
//   - Orchestration:
//     – Generate:   allocate → build → merge → wire → freeze, as a Topology.
//     – CliqueGate: the whole pipeline as a Constructor.
//     – BuildGraph: composes constructors over one graph.
//
// Example, n=2, s=3, g=2:
//
//	gate      {0,1}          edge  0-1
//	component {2,3,4}        edges 2-3 2-4 3-4
//	component {5,6,7}        edges 5-6 5-7 6-7
//	wiring    0-2 (first half → first component), 1-5 (second half → second)
//
// Guarantees:
//
//   - Total node count is n·(n−1)/2·g + n·s and ids cover [0, total) exactly.
//   - Odd gate sizes put the extra node in the second half, attached to the
//     later component of the pairing.
//   - Invalid parameters fail fast with *ParamError wrapping ErrInvalidArgument
//     or ErrSizeMismatch; no partial graph is returned.
//
// See individual function documentation for detailed contracts and
// complexity notes.
package builder
