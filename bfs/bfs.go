package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cliquegate/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []core.NodeID
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Neighbors are expanded in ascending id order, so Order is reproducible.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or a
// wrapped OnVisit error.
//
// Complexity: O(V + E log Δ) for the sorted neighbor lists.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]core.NodeID, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	w.enqueue(start, 0, start)

	return w.res, w.loop()
}

func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.res.Depth[id] = d
	if id != parent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[id]
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}

		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		// id is known to exist, so NeighborIDs cannot fail.
		neighbors, _ := w.graph.NeighborIDs(id)
		for _, nbr := range neighbors {
			if _, seen := w.res.Depth[nbr]; seen || !w.opts.FilterNeighbor(id, nbr) {
				continue
			}
			w.enqueue(nbr, depth+1, id)
		}
	}

	return nil
}
