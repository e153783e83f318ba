package citysearch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/citysearch/astar"
	"github.com/katalvlaran/citysearch/bfs"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/dfs"
	"github.com/katalvlaran/citysearch/greedy"
	"github.com/katalvlaran/citysearch/iddfs"
	"github.com/katalvlaran/citysearch/search"
)

// ErrUnknownStrategy is returned for selectors outside the five strategies.
var ErrUnknownStrategy = errors.New("citysearch: unknown strategy")

// Strategy selects one of the five search algorithms.
// Values follow the interactive menu order, starting at 1.
type Strategy int

const (
	BreadthFirst Strategy = iota + 1
	DepthFirst
	IterativeDeepening
	GreedyBestFirst
	AStar
)

type strategyInfo struct {
	name    string
	desc    string
	aliases []string
	run     func(*core.Graph, string, string, ...search.Option) (*search.Result, error)
}

var registry = map[Strategy]strategyInfo{
	BreadthFirst:       {bfs.Name, "Breadth-first search", []string{"bfs", "breadth-first", "breadth"}, bfs.Search},
	DepthFirst:         {dfs.Name, "Depth-first search", []string{"dfs", "depth-first", "depth"}, dfs.Search},
	IterativeDeepening: {iddfs.Name, "ID-DFS search", []string{"iddfs", "id-dfs", "iterative-deepening"}, iddfs.Search},
	GreedyBestFirst:    {greedy.Name, "Best-first search", []string{"greedy", "best-first", "greedy-best-first"}, greedy.Search},
	AStar:              {astar.Name, "A* search", []string{"astar", "a*", "a-star"}, astar.Search},
}

// Strategies lists every strategy in menu order.
func Strategies() []Strategy {
	return []Strategy{BreadthFirst, DepthFirst, IterativeDeepening, GreedyBestFirst, AStar}
}

// String returns the canonical name, the same one reported in search.Result.
func (s Strategy) String() string {
	if info, ok := registry[s]; ok {
		return info.name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Description returns the human-readable menu label.
func (s Strategy) Description() string {
	if info, ok := registry[s]; ok {
		return info.desc
	}

	return s.String()
}

// Valid reports whether s is one of the five strategies.
func (s Strategy) Valid() bool {
	_, ok := registry[s]

	return ok
}

// ParseStrategy accepts a menu number ("1".."5") or a name/alias such as
// "bfs", "id-dfs", "best-first" or "a*". Matching ignores case and surrounding space.
func ParseStrategy(text string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	for _, s := range Strategies() {
		if key == fmt.Sprint(int(s)) {
			return s, nil
		}
		for _, alias := range registry[s].aliases {
			if key == alias {
				return s, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, text)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseStrategy.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// Run dispatches the query to strategy s.
func Run(g *core.Graph, s Strategy, start, end string, opts ...search.Option) (*search.Result, error) {
	info, ok := registry[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	return info.run(g, start, end, opts...)
}
