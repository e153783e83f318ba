package bfs

import (
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/internal/frontier"
	"github.com/katalvlaran/citysearch/search"
)

// Name identifies this strategy in search.Result.
const Name = "breadth-first"

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *core.Graph
	opts     search.Options
	end      string
	queue    *frontier.Queue
	visited  map[string]bool
	expanded int
}

// Search runs breadth-first search from start to end.
// A nil error with Result.Found == false means no route exists.
func Search(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error) {
	o, err := search.Setup(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	n := g.CityCount()
	w := &walker{
		graph:   g,
		opts:    o,
		end:     end,
		queue:   frontier.NewQueue(n),
		visited: make(map[string]bool, n),
	}
	w.queue.Push(frontier.Root(start, 0))

	return w.loop(), nil
}

// loop dequeues until the target is reached or the queue drains.
func (w *walker) loop() *search.Result {
	for w.queue.Len() > 0 {
		item := w.queue.Pop()
		if item.City == w.end {
			return search.Found(Name, item.Path(), w.expanded)
		}
		if w.visited[item.City] {
			continue
		}
		w.visit(item)
		w.enqueueNeighbors(item)
	}

	return search.Exhausted(Name, w.expanded)
}

func (w *walker) visit(item *frontier.Entry) {
	w.visited[item.City] = true
	w.expanded++
	w.opts.OnExpand(item.City, item.Hops)
}

// enqueueNeighbors pushes every neighbor not yet visited, in adjacency order.
func (w *walker) enqueueNeighbors(item *frontier.Entry) {
	for _, nbr := range w.graph.Neighbors(item.City) {
		if !w.visited[nbr] {
			w.queue.Push(item.Child(nbr, 0))
		}
	}
}
