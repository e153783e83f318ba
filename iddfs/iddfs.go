package iddfs

import (
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/search"
)

// Name identifies this strategy in search.Result.
const Name = "iterative-deepening"

// frame is one level of a depth-limited probe.
type frame struct {
	city      string
	remaining int      // depth budget left below this city
	neighbors []string // snapshot of the adjacency list
	next      int      // index of the next neighbor to try
}

// prober runs depth-limited probes over a fixed query.
type prober struct {
	graph      *core.Graph
	opts       search.Options
	start, end string
	expanded   int
}

// Search runs iterative deepening from start to end.
// Result.Depth reports the bound at which the search stopped.
func Search(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error) {
	o, err := search.Setup(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	p := &prober{graph: g, opts: o, start: start, end: end}
	last := 0
	for d := 0; o.MaxDepth == search.Unbounded || d <= o.MaxDepth; d++ {
		last = d
		if path := p.probe(d); path != nil {
			res := search.Found(Name, path, p.expanded)
			res.Depth = d

			return res, nil
		}
	}

	res := search.Exhausted(Name, p.expanded)
	res.Depth = last

	return res, nil
}

// probe runs one depth-limited search with bound d and returns the route,
// or nil when no route of exactly d edges was found.
func (p *prober) probe(d int) core.Path {
	if d == 0 {
		if p.start == p.end {
			return core.Path{p.start}
		}
		return nil
	}

	visited := map[string]bool{}
	stack := make([]frame, 0, d)
	push := func(city string, remaining int) {
		visited[city] = true
		p.expanded++
		p.opts.OnExpand(city, len(stack))
		stack = append(stack, frame{city: city, remaining: remaining, neighbors: p.graph.Neighbors(city)})
	}
	push(p.start, d)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.neighbors) {
			// every branch failed: unmark and backtrack
			delete(visited, top.city)
			stack = stack[:len(stack)-1]
			continue
		}

		nbr := top.neighbors[top.next]
		top.next++
		if visited[nbr] {
			continue
		}

		remaining := top.remaining - 1
		if remaining == 0 {
			if nbr == p.end {
				return p.route(stack, nbr)
			}
			continue
		}
		push(nbr, remaining)
	}

	return nil
}

// route lists the cities on the stack followed by last.
func (p *prober) route(stack []frame, last string) core.Path {
	path := make(core.Path, 0, len(stack)+1)
	for _, f := range stack {
		path = append(path, f.city)
	}

	return append(path, last)
}
