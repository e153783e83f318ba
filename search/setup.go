package search

import (
	"fmt"

	"github.com/katalvlaran/citysearch/core"
)

// Setup applies opts over DefaultOptions and validates the query.
// Strategies call it before seeding their frontier so that an unknown
// endpoint fails fast instead of reaching the heuristic.
func Setup(g *core.Graph, start, end string, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrGraphNil
	}
	for _, city := range [2]string{start, end} {
		if !g.HasCity(city) {
			return o, fmt.Errorf("%w: %q", ErrUnknownCity, city)
		}
	}

	return o, nil
}

// Estimate returns o.Distance between city and target.
// A city without coordinates is a precondition violation (ErrUnknownCity).
func (o Options) Estimate(g *core.Graph, city, target string) (float64, error) {
	a, err := g.Coordinate(city)
	if err != nil {
		return 0, fmt.Errorf("%w: %q has no coordinates", ErrUnknownCity, city)
	}
	b, err := g.Coordinate(target)
	if err != nil {
		return 0, fmt.Errorf("%w: %q has no coordinates", ErrUnknownCity, target)
	}

	return o.Distance(a, b), nil
}

// Found builds a successful Result for strategy.
func Found(strategy string, path core.Path, expanded int) *Result {
	return &Result{Strategy: strategy, Found: true, Path: path, Expanded: expanded, Depth: path.Hops()}
}

// Exhausted builds a no-path Result for strategy.
func Exhausted(strategy string, expanded int) *Result {
	return &Result{Strategy: strategy, Expanded: expanded}
}
