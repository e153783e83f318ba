package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysearch/astar"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/geo"
	"github.com/katalvlaran/citysearch/internal/testgraph"
	"github.com/katalvlaran/citysearch/search"
)

func TestSearch_Errors(t *testing.T) {
	_, err := astar.Search(nil, "A", "B")
	assert.ErrorIs(t, err, search.ErrGraphNil)

	_, err = astar.Search(testgraph.Line(), "A", "nope")
	assert.ErrorIs(t, err, search.ErrUnknownCity)

	_, err = astar.Search(testgraph.Ghost(), "A", "B")
	assert.ErrorIs(t, err, search.ErrUnknownCity)

	_, err = astar.Search(testgraph.Line(), "A", "C", search.WithCostModel(search.CostModel(-1)))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestSearch_Line(t *testing.T) {
	res, err := astar.Search(testgraph.Line(), "A", "C")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "C"}, res.Path)
	assert.Equal(t, astar.Name, res.Strategy)

	res, err = astar.Search(testgraph.Line(), "B", "D")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.Expanded)
}

// TestSearch_HopCostIsDominated shows the default model: kilometers in h
// outweigh hop counts in g, so A* takes the same trap as greedy.
func TestSearch_HopCostIsDominated(t *testing.T) {
	g := testgraph.Trap()
	res, err := astar.Search(g, "S", "G")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"S", "T", "U", "G"}, res.Path)

	res, err = astar.Search(testgraph.Detour(), "S", "G")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"S", "P", "Q", "G"}, res.Path)
}

// TestSearch_HopCostWithZeroHeuristic leaves only g: A* then returns the fewest hops.
func TestSearch_HopCostWithZeroHeuristic(t *testing.T) {
	zero := func(_, _ geo.Coordinate) float64 { return 0 }
	res, err := astar.Search(testgraph.Detour(), "S", "G", search.WithDistance(zero))
	require.NoError(t, err)
	assert.Equal(t, core.Path{"S", "M", "G"}, res.Path)
}

// TestSearch_DistanceCost opts into classical A* and finds the shorter route.
func TestSearch_DistanceCost(t *testing.T) {
	g := testgraph.Trap()
	res, err := astar.Search(g, "S", "G", search.WithCostModel(search.CostDistance))
	require.NoError(t, err)
	assert.Equal(t, core.Path{"S", "V", "G"}, res.Path)

	km, err := res.Distance(g)
	require.NoError(t, err)
	assert.InDelta(t, 497, km, 2)
}

// TestSearch_ExpansionHops reports hop counts of expanded cities.
func TestSearch_ExpansionHops(t *testing.T) {
	hops := map[string]int{}
	_, err := astar.Search(testgraph.Trap(), "S", "G",
		search.WithOnExpand(func(city string, h int) { hops[city] = h }),
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"S": 0, "T": 1, "U": 2}, hops)
}

func TestSearch_DuplicateEdges(t *testing.T) {
	for _, q := range [][2]string{{"A", "C"}, {"C", "A"}} {
		res, err := astar.Search(testgraph.Duplicated(), q[0], q[1])
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.NoError(t, res.Path.Validate(q[0], q[1]))
	}
}
