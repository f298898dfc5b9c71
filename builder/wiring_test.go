package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquegate/builder"
	"github.com/katalvlaran/cliquegate/core"
)

// TestPairings_Order pins the nested-loop enumeration and the gate cursor.
func TestPairings_Order(t *testing.T) {
	t.Parallel()

	require.Empty(t, builder.Pairings(0))
	require.Empty(t, builder.Pairings(1))
	require.Equal(t, []builder.Pairing{{Src: 0, Dest: 1, Gate: 0}}, builder.Pairings(2))
	require.Equal(t, []builder.Pairing{
		{Src: 0, Dest: 1, Gate: 0},
		{Src: 0, Dest: 2, Gate: 1},
		{Src: 0, Dest: 3, Gate: 2},
		{Src: 1, Dest: 2, Gate: 3},
		{Src: 1, Dest: 3, Gate: 4},
		{Src: 2, Dest: 3, Gate: 5},
	}, builder.Pairings(4))

	for n := 0; n < 8; n++ {
		require.Len(t, builder.Pairings(n), builder.PairCount(n))
	}
}

// buildParts allocates and builds the cliques the way Generate does.
func buildParts(t *testing.T, n, s, g int) (*core.Graph, []*core.Graph, []*core.Graph) {
	t.Helper()

	a, err := builder.Allocate(n, s, g)
	require.NoError(t, err)

	gates := make([]*core.Graph, len(a.GateRanges))
	for i, r := range a.GateRanges {
		gates[i] = builder.Clique(r)
	}
	comps := make([]*core.Graph, len(a.ComponentRanges))
	for i, r := range a.ComponentRanges {
		comps[i] = builder.Clique(r)
	}
	merged, err := builder.Merge(append(append([]*core.Graph(nil), gates...), comps...)...)
	require.NoError(t, err)

	return merged, comps, gates
}

// TestWire_PositionalCorrespondence checks the exact cross edges for n=3, s=3, g=3:
// half1 = 1 node → src[0], half2 = 2 nodes → dest[0], dest[1].
func TestWire_PositionalCorrespondence(t *testing.T) {
	t.Parallel()

	merged, comps, gates := buildParts(t, 3, 3, 3)
	cross, err := builder.Wire(merged, comps, gates)
	require.NoError(t, err)

	// gates: {0,1,2} {3,4,5} {6,7,8}; components: {9,10,11} {12,13,14} {15,16,17}
	require.Equal(t, []core.Edge{
		{U: 0, V: 9}, {U: 1, V: 12}, {U: 2, V: 13}, // pairing (0,1)
		{U: 3, V: 9}, {U: 4, V: 15}, {U: 5, V: 16}, // pairing (0,2)
		{U: 6, V: 12}, {U: 7, V: 15}, {U: 8, V: 16}, // pairing (1,2)
	}, cross)
	for _, e := range cross {
		require.True(t, merged.HasEdge(e.U, e.V))
	}
}

// TestWire_OddGateFavorsDest: the larger half always lands on the later component.
func TestWire_OddGateFavorsDest(t *testing.T) {
	t.Parallel()

	const n, s, g = 4, 3, 5
	merged, comps, gates := buildParts(t, n, s, g)
	_, err := builder.Wire(merged, comps, gates)
	require.NoError(t, err)

	for _, p := range builder.Pairings(n) {
		toSrc := countBetween(merged, gates[p.Gate].Vertices(), comps[p.Src].Vertices())
		toDest := countBetween(merged, gates[p.Gate].Vertices(), comps[p.Dest].Vertices())
		require.Equal(t, g/2, toSrc, "pairing %+v", p)
		require.Equal(t, g-g/2, toDest, "pairing %+v", p)
	}
}

// TestWire_SizeMismatch rejects a half that is longer than its component.
func TestWire_SizeMismatch(t *testing.T) {
	t.Parallel()

	merged, comps, gates := buildParts(t, 2, 2, 5) // half2 = 3 > 2
	before := merged.EdgeCount()

	cross, err := builder.Wire(merged, comps, gates)
	require.ErrorIs(t, err, builder.ErrSizeMismatch)
	require.Nil(t, cross)
	require.Equal(t, before, merged.EdgeCount(), "no edge of the failing pairing is added")

	var pe *builder.ParamError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, builder.MethodWire, pe.Method)
	require.Equal(t, 5, pe.GateSize)
	require.Equal(t, 2, pe.ComponentSize)
}

// TestWire_SizeMismatchLeavesGraphUntouched mixes component sizes so a
// later pairing is too small; nothing from the earlier pairing may land.
func TestWire_SizeMismatchLeavesGraphUntouched(t *testing.T) {
	t.Parallel()

	// Gates {0,1,2} {3,4,5} {6,7,8} of size 3; half2 = 2 nodes.
	gates := []*core.Graph{
		builder.Clique(builder.IDRange{Start: 0, Len: 3}),
		builder.Clique(builder.IDRange{Start: 3, Len: 3}),
		builder.Clique(builder.IDRange{Start: 6, Len: 3}),
	}
	// Component 2 has a single node: pairing (0,1) fits, (0,2) is rejected.
	comps := []*core.Graph{
		builder.Clique(builder.IDRange{Start: 9, Len: 3}),
		builder.Clique(builder.IDRange{Start: 12, Len: 3}),
		builder.Clique(builder.IDRange{Start: 15, Len: 1}),
	}
	merged, err := builder.Merge(append(append([]*core.Graph(nil), gates...), comps...)...)
	require.NoError(t, err)
	before := merged.Edges()

	cross, err := builder.Wire(merged, comps, gates)
	require.ErrorIs(t, err, builder.ErrSizeMismatch)
	require.Nil(t, cross)
	require.Equal(t, before, merged.Edges(), "no pairing may be wired when any pairing is rejected")
	require.False(t, merged.HasEdge(0, 9), "pairing (0,1) must not be wired")
}

// TestWire_GateCountMismatch rejects gate lists that do not match the pairings.
func TestWire_GateCountMismatch(t *testing.T) {
	t.Parallel()

	merged, comps, gates := buildParts(t, 3, 3, 2)
	_, err := builder.Wire(merged, comps, gates[:2])
	require.ErrorIs(t, err, builder.ErrInvalidArgument)

	_, err = builder.Wire(merged, comps, []*core.Graph{gates[0], nil, gates[2]})
	require.ErrorIs(t, err, builder.ErrInvalidArgument)
}

// TestWire_FrozenTarget surfaces core errors.
func TestWire_FrozenTarget(t *testing.T) {
	t.Parallel()

	merged, comps, gates := buildParts(t, 2, 3, 2)
	merged.Freeze()
	_, err := builder.Wire(merged, comps, gates)
	require.ErrorIs(t, err, core.ErrGraphFrozen)
}

// TestWire_NoPairings: fewer than two components consume no gates.
func TestWire_NoPairings(t *testing.T) {
	t.Parallel()

	merged, comps, gates := buildParts(t, 1, 4, 3)
	require.Empty(t, gates)
	cross, err := builder.Wire(merged, comps, gates)
	require.NoError(t, err)
	require.Empty(t, cross)
}

// countBetween counts edges of g with one endpoint in a and the other in b.
func countBetween(g *core.Graph, a, b []core.NodeID) int {
	c := 0
	for _, u := range a {
		for _, v := range b {
			if g.HasEdge(u, v) {
				c++
			}
		}
	}
	return c
}
