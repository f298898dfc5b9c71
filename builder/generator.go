// SPDX-License-Identifier: MIT
// Package: cliquegate/builder
//
// generator.go — the clique-gate topology generator.
//
// Pipeline (fixed order):
//  1. Allocate id ranges (gates first, then components).
//  2. Check that gate halves fit the components (fail before building).
//  3. Build one clique per gate range and per component range.
//  4. Merge all cliques into one graph owned by the generator.
//  5. Wire every pairing through its gate.
//  6. Freeze the graph and hand it out inside a Topology.
//
// Determinism: identical (n,s,g) always yield identical node and edge sets.
// Concurrency: single-threaded; the graph has one owner until Freeze.

package builder

import (
	"github.com/katalvlaran/cliquegate/core"
)

// Topology is a generated clique-gate graph plus the bookkeeping that
// produced it. All accessors return copies or frozen values.
type Topology struct {
	graph    *core.Graph
	alloc    Allocation
	pairings []Pairing
	cross    []core.Edge
}

// Graph returns the frozen graph.
func (t *Topology) Graph() *core.Graph { return t.graph }

// Allocation returns a copy of the id ranges used for gates and components.
func (t *Topology) Allocation() Allocation {
	a := t.alloc
	a.GateRanges = append([]IDRange(nil), t.alloc.GateRanges...)
	a.ComponentRanges = append([]IDRange(nil), t.alloc.ComponentRanges...)

	return a
}

// Pairings returns the wiring order; Pairings()[k] owns Allocation().GateRanges[k].
func (t *Topology) Pairings() []Pairing { return append([]Pairing(nil), t.pairings...) }

// CrossEdges returns the gate-to-component edges in insertion order.
func (t *Topology) CrossEdges() []core.Edge { return append([]core.Edge(nil), t.cross...) }

// TotalNodes returns n·(n−1)/2·g + n·s.
func (t *Topology) TotalNodes() int { return t.alloc.TotalNodes() }

// Generate builds the clique-gate graph for n components of size s,
// pairwise joined by gates of size g.
//
// Errors:
//   - ErrInvalidArgument (*ParamError): parameters outside their domain.
//   - ErrSizeMismatch (*ParamError): g−⌊g/2⌋ > s while n ≥ 2.
//
// On error no graph is returned.
func Generate(n, s, g int, opts ...BuilderOption) (*Topology, error) {
	cfg := newBuilderConfig(opts...)
	t, err := generate(n, s, g, cfg)
	if err != nil {
		return nil, err
	}
	t.graph.Freeze()

	cfg.logger.Info("clique-gate graph generated",
		"components", n, "component_size", s, "gate_size", g,
		"nodes", t.graph.VertexCount(), "edges", t.graph.EdgeCount())

	return t, nil
}

// CliqueGate returns a Constructor that generates the clique-gate graph and
// merges it into the target graph. Ids start at 0, so the target should not
// already use [0, n·(n−1)/2·g + n·s).
func CliqueGate(n, s, g int) Constructor {
	return func(dst *core.Graph, cfg builderConfig) error {
		t, err := generate(n, s, g, cfg)
		if err != nil {
			return builderErrorf(MethodCliqueGate, "%w", err)
		}
		if err = dst.Merge(t.graph); err != nil {
			return builderErrorf(MethodCliqueGate, "%w", err)
		}

		return nil
	}
}

// generate runs the pipeline and returns an unfrozen Topology.
func generate(n, s, g int, cfg builderConfig) (*Topology, error) {
	log := cfg.logger

	alloc, err := Allocate(n, s, g)
	if err != nil {
		return nil, err
	}
	if err = validateGateFit(MethodGenerate, n, s, g); err != nil {
		return nil, err
	}
	log.Debug("id ranges allocated",
		"gates", len(alloc.GateRanges), "components", len(alloc.ComponentRanges), "total_nodes", alloc.TotalNodes())

	gates := buildCliques(alloc.GateRanges)
	components := buildCliques(alloc.ComponentRanges)

	parts := make([]*core.Graph, 0, len(gates)+len(components))
	parts = append(parts, gates...)
	parts = append(parts, components...)

	graph := core.NewGraph(core.WithCapacity(alloc.TotalNodes()))
	if err = mergeInto(graph, parts); err != nil {
		return nil, builderErrorf(MethodGenerate, "%w", err)
	}
	log.Debug("cliques merged", "parts", len(parts), "nodes", graph.VertexCount(), "edges", graph.EdgeCount())

	cross, err := Wire(graph, components, gates)
	if err != nil {
		return nil, err
	}
	log.Debug("gates wired", "pairings", len(gates), "cross_edges", len(cross))

	return &Topology{
		graph:    graph,
		alloc:    alloc,
		pairings: Pairings(n),
		cross:    cross,
	}, nil
}

// buildCliques returns Clique(r) for every range, in order.
func buildCliques(ranges []IDRange) []*core.Graph {
	out := make([]*core.Graph, len(ranges))
	for i, r := range ranges {
		out[i] = Clique(r)
	}

	return out
}
