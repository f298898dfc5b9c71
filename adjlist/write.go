package adjlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/cliquegate/core"
	"github.com/katalvlaran/cliquegate/layout"
)

// ErrNilGraph is returned when Write receives a nil graph.
var ErrNilGraph = errors.New("adjlist: graph is nil")

// ErrMissingPosition is returned when a vertex has no layout coordinates.
var ErrMissingPosition = errors.New("adjlist: vertex has no position")

// Write renders g and its layout to w. It checks that every vertex has a
// position before emitting anything, so a failed Write never leaves a
// truncated document with a mismatching node-count line.
//
// Complexity: O(V log V + E log E).
func Write(w io.Writer, g *core.Graph, pos layout.Positions) error {
	if g == nil {
		return ErrNilGraph
	}
	ids := g.Vertices()
	for _, id := range ids {
		if _, ok := pos[id]; !ok {
			return fmt.Errorf("%w: node %d", ErrMissingPosition, id)
		}
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	buf = strconv.AppendInt(buf[:0], int64(nodeCount(g)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	for _, e := range g.Edges() {
		buf = strconv.AppendInt(buf[:0], int64(e.U), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.V), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	for _, id := range ids {
		p := pos[id]
		buf = strconv.AppendInt(buf[:0], int64(id), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	return bw.Flush()
}

// nodeCount returns max id + 1, or 0 for an empty graph.
func nodeCount(g *core.Graph) int {
	max, ok := g.MaxNodeID()
	if !ok {
		return 0
	}

	return int(max) + 1
}
