package greedy

import (
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/internal/frontier"
	"github.com/katalvlaran/citysearch/search"
)

// Name identifies this strategy in search.Result.
const Name = "greedy-best-first"

// runner holds the mutable state for a single greedy search.
type runner struct {
	g        *core.Graph
	opts     search.Options
	end      string
	pq       *frontier.MinQueue
	visited  map[string]bool
	expanded int
}

// Search runs greedy best-first search from start to end.
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

// relax pushes each unvisited neighbor keyed by its distance to the goal.
func (r *runner) relax(cur *frontier.Entry) error {
	for _, v := range r.g.Neighbors(cur.City) {
		if r.visited[v] {
			continue
		}
		h, err := r.opts.Estimate(r.g, v, r.end)
		if err != nil {
			return err
		}
		r.pq.Push(cur.Child(v, h))
	}

	return nil
}
