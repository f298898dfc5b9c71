package core_test

import (
	"fmt"

	"github.com/katalvlaran/cliquegate/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty graph and add a triangle (vertices are auto-added):
	g := core.NewGraph()
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 0)

	// 2) A duplicate collapses into the existing edge:
	_ = g.AddEdge(1, 0)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Edge 2-1 exists?", g.HasEdge(2, 1))

	// 3) Seal it:
	g.Freeze()
	fmt.Println(g.AddVertex(3))

	// Output:
	// Vertices: [0 1 2]
	// Edges: 3
	// Edge 2-1 exists? true
	// core: graph is frozen
}
