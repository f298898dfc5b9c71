package layout

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/cliquegate/core"
)

// ToGonum copies g into a gonum undirected graph with identical node ids.
// Isolated vertices are kept.
//
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for _, id := range g.Vertices() {
		out.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		out.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	return out
}
