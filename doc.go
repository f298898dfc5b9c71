// Package cliquegate generates clique-gate graphs: n fully connected big
// components, one small gate clique for every unordered pair of them, and
// positional cross edges attaching each gate half to one side of its pair.
//
// ✨ What is in the box?
//
//	core/      — thread-safe undirected graph over dense integer node ids
//	builder/   — id allocation, clique construction, merging, gate wiring, Generate
//	layout/    — spring-embedder 2D layout (gonum EadesR2)
//	adjlist/   — the plain-text adjacency list with coordinates, read and write
//	bfs/       — breadth-first search and connected components for audits
//	cmd/cliquegate — the command-line generator
//
// Quick ASCII example (n=2, s=3, g=2):
//
//	 0───1          gate clique {0,1}
//	 │   │
//	 2   5          0→first of component A, 1→first of component B
//	/ \ / \
//	3─4 6─7        component cliques {2,3,4} and {5,6,7}
//
// Node ids are laid out gates first, then components, each block contiguous:
//
//	[gate 0][gate 1]…[gate C(n,2)−1][component 0]…[component n−1]
//
// Total nodes: n·(n−1)/2·g + n·s.
//
// Usage:
//
//	top, err := builder.Generate(3, 10, 4)
//	pos, err := layout.Spring(ctx, top.Graph())
//	err = adjlist.Write(os.Stdout, top.Graph(), pos)
package cliquegate
