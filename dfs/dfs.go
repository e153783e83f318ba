package dfs

import (
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/internal/frontier"
	"github.com/katalvlaran/citysearch/search"
)

// Name identifies this strategy in search.Result.
const Name = "depth-first"

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph    *core.Graph
	opts     search.Options
	end      string
	stack    *frontier.Stack
	visited  map[string]bool
	expanded int
}

// Search runs depth-first search from start to end.
// A nil error with Result.Found == false means no route exists.
func Search(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error) {
	o, err := search.Setup(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	w := &dfsWalker{
		graph:   g,
		opts:    o,
		end:     end,
		stack:   frontier.NewStack(g.CityCount()),
		visited: make(map[string]bool, g.CityCount()),
	}
	w.stack.Push(frontier.Root(start, 0))

	return w.traverse(), nil
}

func (w *dfsWalker) traverse() *search.Result {
	for w.stack.Len() > 0 {
		top := w.stack.Pop()
		if top.City == w.end {
			return search.Found(Name, top.Path(), w.expanded)
		}
		if w.visited[top.City] {
			continue
		}

		w.visited[top.City] = true
		w.expanded++
		w.opts.OnExpand(top.City, top.Hops)

		for _, nid := range w.graph.Neighbors(top.City) {
			if !w.visited[nid] {
				w.stack.Push(top.Child(nid, 0))
			}
		}
	}

	return search.Exhausted(Name, w.expanded)
}
