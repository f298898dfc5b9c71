package layout

import (
	"context"
	"fmt"
	"math"

	glayout "gonum.org/v1/gonum/graph/layout"

	"github.com/katalvlaran/cliquegate/core"
)

// Spring computes a force-directed 2D layout for g with the Eades spring
// embedder (Barnes-Hut repulsion). Every vertex of g receives a position;
// the result is centered on the origin and rescaled so the largest absolute
// coordinate equals the configured scale.
//
// Initial positions are random, so coordinates differ between runs; only
// their existence and finiteness are guaranteed.
//
// Errors:
//   - ErrNilGraph: g == nil.
//   - ErrDiverged: the embedder produced NaN or ±Inf.
//   - ctx.Err(): the context was cancelled between iterations.
//
// Complexity: O(updates · (V log V + E)).
func Spring(ctx context.Context, g *core.Graph, opts ...Option) (Positions, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := newConfig(opts...)

	ids := g.Vertices()
	pos := make(Positions, len(ids))
	switch len(ids) {
	case 0:
		return pos, nil
	case 1:
		pos[ids[0]] = Point{}
		return pos, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	eades := glayout.EadesR2{
		Updates:   cfg.updates,
		Repulsion: cfg.repulsion,
		Rate:      cfg.rate,
		Theta:     cfg.theta,
	}
	optimizer := glayout.NewOptimizerR2(ToGonum(g), eades.Update)
	for optimizer.Update() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	for _, id := range ids {
		v := optimizer.Coord2(int64(id))
		if !finite(v.X) || !finite(v.Y) {
			return nil, fmt.Errorf("%w: node %d at (%g,%g)", ErrDiverged, id, v.X, v.Y)
		}
		pos[id] = Point{X: v.X, Y: v.Y}
	}
	rescale(pos, cfg.scale)

	return pos, nil
}

// rescale centers pos on its mean and scales it so max(|x|,|y|) == scale.
// scale == 0 leaves pos untouched.
func rescale(pos Positions, scale float64) {
	if scale == 0 || len(pos) == 0 {
		return
	}

	var cx, cy float64
	for _, p := range pos {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pos))
	cy /= float64(len(pos))

	var lim float64
	for id, p := range pos {
		p.X -= cx
		p.Y -= cy
		pos[id] = p
		lim = math.Max(lim, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	if lim == 0 {
		return
	}
	f := scale / lim
	for id, p := range pos {
		pos[id] = Point{X: p.X * f, Y: p.Y * f}
	}
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
