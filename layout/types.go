package layout

import (
	"errors"
	"sort"

	"github.com/katalvlaran/cliquegate/core"
)

// ErrNilGraph is returned when Spring receives a nil graph.
var ErrNilGraph = errors.New("layout: graph is nil")

// ErrDiverged is returned when the embedder produced a non-finite coordinate.
var ErrDiverged = errors.New("layout: non-finite coordinate")

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Positions maps every vertex of a laid-out graph to its coordinates.
type Positions map[core.NodeID]Point

// IDs returns the positioned vertices in ascending order.
func (p Positions) IDs() []core.NodeID {
	ids := make([]core.NodeID, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Default embedder parameters, close to the values gonum's own examples use.
const (
	DefaultUpdates   = 100
	DefaultRepulsion = 1.0
	DefaultRate      = 0.05
	DefaultTheta     = 0.2
	// DefaultScale bounds the rescaled layout to [-DefaultScale, DefaultScale]².
	DefaultScale = 1.0
)

// config holds the resolved embedder parameters.
type config struct {
	updates   int
	repulsion float64
	rate      float64
	theta     float64
	scale     float64
}

// Option customizes Spring.
// Option constructors panic on meaningless values.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		updates:   DefaultUpdates,
		repulsion: DefaultRepulsion,
		rate:      DefaultRate,
		theta:     DefaultTheta,
		scale:     DefaultScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithUpdates sets the number of embedder iterations (n ≥ 1).
func WithUpdates(n int) Option {
	if n < 1 {
		panic("layout: WithUpdates(n<1)")
	}
	return func(c *config) { c.updates = n }
}

// WithRepulsion sets the global repulsion strength (r > 0).
func WithRepulsion(r float64) Option {
	if r <= 0 {
		panic("layout: WithRepulsion(r<=0)")
	}
	return func(c *config) { c.repulsion = r }
}

// WithRate sets the gradient descent rate (r > 0).
func WithRate(r float64) Option {
	if r <= 0 {
		panic("layout: WithRate(r<=0)")
	}
	return func(c *config) { c.rate = r }
}

// WithTheta sets the Barnes-Hut approximation constant (θ ≥ 0).
func WithTheta(theta float64) Option {
	if theta < 0 {
		panic("layout: WithTheta(theta<0)")
	}
	return func(c *config) { c.theta = theta }
}

// WithScale sets the half-width of the square the layout is rescaled into.
// Zero disables rescaling; negative values panic.
func WithScale(s float64) Option {
	if s < 0 {
		panic("layout: WithScale(s<0)")
	}
	return func(c *config) { c.scale = s }
}
