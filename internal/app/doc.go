// Package app runs one generation: it builds the clique-gate topology,
// lays it out and writes the adjacency list. It is decoupled from the CLI
// so it can be driven directly by tests.
package app
