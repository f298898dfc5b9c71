package adjlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliquegate/core"
	"github.com/katalvlaran/cliquegate/layout"
)

// ErrMalformedLine is returned for a line that does not fit its section.
var ErrMalformedLine = errors.New("adjlist: malformed line")

// ErrEmptyDocument is returned when the input has no node-count line.
var ErrEmptyDocument = errors.New("adjlist: empty document")

// ErrTooManyNodes is returned when the node-count line exceeds the reader's
// limit.
var ErrTooManyNodes = errors.New("adjlist: node count exceeds limit")

// DefaultMaxNodes caps the node count Read accepts unless WithMaxNodes says
// otherwise.
const DefaultMaxNodes = 1 << 22

type readConfig struct {
	maxNodes int
}

// ReadOption customizes Read.
type ReadOption func(*readConfig)

// WithMaxNodes sets the largest accepted node count (n ≥ 1).
func WithMaxNodes(n int) ReadOption {
	if n < 1 {
		panic("adjlist: WithMaxNodes(n<1)")
	}
	return func(c *readConfig) { c.maxNodes = n }
}

// Document is a parsed adjacency-list file.
type Document struct {
	// NodeCount is the value of the first line. Every id in [0, NodeCount)
	// is a vertex of Graph, even without incident edges.
	NodeCount int
	Graph     *core.Graph
	// Positions is empty when the coordinate section is absent.
	Positions layout.Positions
}

// Read parses a document from r. Edge endpoints and positioned ids must lie
// in [0, NodeCount). Parsing stops at the blank line closing the coordinate
// section; anything after it is ignored. Node counts above the limit
// (DefaultMaxNodes unless overridden) fail with ErrTooManyNodes before any
// vertex is allocated; ids without edges are added once the document has
// parsed.
func Read(r io.Reader, opts ...ReadOption) (*Document, error) {
	cfg := readConfig{maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return strings.TrimSpace(sc.Text()), true
	}

	head, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyDocument
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return nil, malformed(line, head, "node count")
	}

	if n > cfg.maxNodes {
		return nil, fmt.Errorf("%w: line %d: %d > %d", ErrTooManyNodes, line, n, cfg.maxNodes)
	}

	doc := &Document{
		NodeCount: n,
		Graph:     core.NewGraph(),
		Positions: make(layout.Positions),
	}

	// Edge section: until a blank line or EOF.
	for {
		text, ok := next()
		if !ok || text == "" {
			break
		}
		f := strings.Fields(text)
		if len(f) != 2 {
			return nil, malformed(line, text, "edge")
		}
		u, errU := parseID(f[0], n)
		v, errV := parseID(f[1], n)
		if errU != nil || errV != nil {
			return nil, malformed(line, text, "edge endpoint")
		}
		if err = doc.Graph.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%w: line %d: %q: %w", ErrMalformedLine, line, text, err)
		}
	}

	// Coordinate section: optional, until a blank line or EOF.
	for {
		text, ok := next()
		if !ok || text == "" {
			break
		}
		f := strings.Fields(text)
		if len(f) != 3 {
			return nil, malformed(line, text, "position")
		}
		id, err := parseID(f[0], n)
		if err != nil {
			return nil, malformed(line, text, "position id")
		}
		x, errX := strconv.ParseFloat(f[1], 64)
		y, errY := strconv.ParseFloat(f[2], 64)
		if errX != nil || errY != nil {
			return nil, malformed(line, text, "coordinate")
		}
		doc.Positions[id] = layout.Point{X: x, Y: y}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	// Isolated ids have no edge line; add them now that the input is known
	// to be well formed.
	for id := 0; id < n; id++ {
		_ = doc.Graph.AddVertex(core.NodeID(id))
	}

	return doc, nil
}

// parseID parses a node id in [0, n).
func parseID(s string, n int) (core.NodeID, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v >= n {
		return 0, fmt.Errorf("id %d outside [0,%d)", v, n)
	}

	return core.NodeID(v), nil
}

func malformed(line int, text, what string) error {
	return fmt.Errorf("%w: line %d: bad %s: %q", ErrMalformedLine, line, what, text)
}
