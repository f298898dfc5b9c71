// Package layout places the vertices of a core.Graph in the plane for
// visualization.
//
// Spring runs gonum's Eades spring embedder over a gonum copy of the graph
// (see ToGonum) and returns one Point per vertex, centered and rescaled
// into [-scale, scale]². Coordinates are a rendering aid only: they are not
// reproducible across runs and carry no topological meaning.
//
// Options (WithUpdates, WithRepulsion, WithRate, WithTheta, WithScale)
// panic on meaningless values; Spring itself only returns errors.
package layout
