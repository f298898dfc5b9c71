// Package adjlist reads and writes the plain-text adjacency-list format
// consumed by the graph visualizer:
//
//	N            total node count (max node id + 1)
//	U V          one line per undirected edge, each pair exactly once
//	             (blank line)
//	ID X Y       one line per node: id and layout coordinates
//	             (blank line)
//
// Write emits edges and nodes in ascending order so output is stable for a
// given graph and layout. Read accepts documents with or without the
// coordinate section, mirroring consumers that only need the topology.
package adjlist
