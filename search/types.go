package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/geo"
)

// Sentinel errors shared by all strategies.
var (
	// ErrGraphNil is returned when a nil graph is passed to a strategy.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrUnknownCity is returned when a query endpoint is missing from the
	// coordinate table, or when a heuristic meets a city without coordinates.
	// It always wraps core.ErrCityNotFound.
	ErrUnknownCity = fmt.Errorf("search: unknown city: %w", core.ErrCityNotFound)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Unbounded is the MaxDepth value that disables the iterative-deepening bound.
const Unbounded = -1

// CostModel selects the accumulated-cost term g used by A*.
type CostModel int

const (
	// CostHops counts traversed edges. f = hops + km mixes units; this is the
	// established behavior and the default.
	CostHops CostModel = iota

	// CostDistance accumulates the distance function over traversed edges,
	// which makes A* classical. Opt-in only.
	CostDistance
)

// String returns "hops" or "distance".
func (m CostModel) String() string {
	switch m {
	case CostHops:
		return "hops"
	case CostDistance:
		return "distance"
	default:
		return fmt.Sprintf("CostModel(%d)", int(m))
	}
}

// Option configures a search.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds the tunables of a single search.
type Options struct {
	// Distance is the heuristic used by informed strategies.
	Distance geo.DistanceFunc

	// OnExpand is called when a city is marked visited, with its hop count
	// from start.
	OnExpand func(city string, hops int)

	// MaxDepth bounds iterative deepening; Unbounded (-1) disables the bound.
	MaxDepth int

	// Cost selects the A* g-term.
	Cost CostModel

	err error
}

// DefaultOptions returns Haversine distance, a no-op hook, no depth bound
// and the hop-count cost model.
func DefaultOptions() Options {
	return Options{
		Distance: geo.Haversine,
		OnExpand: func(string, int) {},
		MaxDepth: Unbounded,
		Cost:     CostHops,
	}
}

// WithDistance replaces the heuristic. A nil fn is ignored.
func WithDistance(fn geo.DistanceFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Distance = fn
		}
	}
}

// WithOnExpand registers an expansion hook. A nil fn is ignored.
func WithOnExpand(fn func(city string, hops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxDepth bounds iterative deepening to depths 0..d.
//
//	d >= 0: probe at most d+1 bounds, then report no path
//	d == Unbounded: no bound
//	d < -1: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < Unbounded {
			o.err = fmt.Errorf("%w: MaxDepth cannot be below %d (%d)", ErrOptionViolation, Unbounded, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithCostModel selects the A* g-term.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		if m != CostHops && m != CostDistance {
			o.err = fmt.Errorf("%w: unknown cost model %d", ErrOptionViolation, int(m))
			return
		}
		o.Cost = m
	}
}

// Result is the outcome of one search.
type Result struct {
	// Strategy names the algorithm that produced the result.
	Strategy string `json:"strategy"`

	// Found is false when the frontier (or the depth bound) was exhausted.
	Found bool `json:"found"`

	// Path runs from start to end inclusive; nil when !Found.
	Path core.Path `json:"path"`

	// Expanded counts cities marked visited, summed over all
	// iterative-deepening bounds.
	Expanded int `json:"expanded"`

	// Depth is the iterative-deepening bound at which the search stopped.
	// Other strategies leave it at the path's hop count.
	Depth int `json:"depth"`
}

// Distance sums the haversine distance over consecutive path cities.
// It returns 0 when nothing was found.
func (r *Result) Distance(g *core.Graph) (float64, error) {
	if r == nil || !r.Found {
		return 0, nil
	}

	return g.PathDistance(r.Path)
}
