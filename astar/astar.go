package astar

import (
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/internal/frontier"
	"github.com/katalvlaran/citysearch/search"
)

// Name identifies this strategy in search.Result.
const Name = "a-star"

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *core.Graph
	opts     search.Options
	end      string
	pq       *frontier.MinQueue
	visited  map[string]bool
	expanded int
}

// Search runs A* from start to end.
func Search(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error) {
	o, err := search.Setup(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	h, err := o.Estimate(g, start, end)
	if err != nil {
		return nil, err
	}
	r := &runner{
		g:       g,
		opts:    o,
		end:     end,
		pq:      frontier.NewMinQueue(g.CityCount()),
		visited: make(map[string]bool, g.CityCount()),
	}
	r.pq.Push(frontier.Root(start, h))

	return r.process()
}

func (r *runner) process() (*search.Result, error) {
	for r.pq.Len() > 0 {
		cur := r.pq.Pop()
		if cur.City == r.end {
			return search.Found(Name, cur.Path(), r.expanded), nil
		}
		if r.visited[cur.City] {
			continue
		}
		r.visited[cur.City] = true
		r.expanded++
		r.opts.OnExpand(cur.City, cur.Hops)

		if err := r.relax(cur); err != nil {
			return nil, err
		}
	}

	return search.Exhausted(Name, r.expanded), nil
}

// relax pushes every unvisited neighbor v of cur with f = g(v) + h(v).
func (r *runner) relax(cur *frontier.Entry) error {
	for _, v := range r.g.Neighbors(cur.City) {
		if r.visited[v] {
			continue
		}
		h, err := r.opts.Estimate(r.g, v, r.end)
		if err != nil {
			return err
		}
		step, err := r.step(cur.City, v)
		if err != nil {
			return err
		}
		r.pq.Push(cur.Step(v, step, cur.Cost+step+h))
	}

	return nil
}

// step returns the g increment for the edge u→v under the configured cost model.
func (r *runner) step(u, v string) (float64, error) {
	if r.opts.Cost == search.CostDistance {
		return r.opts.Estimate(r.g, u, v)
	}

	return 1, nil
}
