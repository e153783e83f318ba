package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/geo"
	"github.com/katalvlaran/citysearch/search"
)

func smallGraph(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddCity("A", geo.Coordinate{Lat: 0}))
	require.NoError(t, b.AddCity("B", geo.Coordinate{Lat: 1}))
	require.NoError(t, b.AddEdge("A", "B"))
	require.NoError(t, b.AddEdge("B", "Ghost"))

	return b.Build()
}

func TestDefaultOptions(t *testing.T) {
	o := search.DefaultOptions()
	assert.Equal(t, search.Unbounded, o.MaxDepth)
	assert.Equal(t, search.CostHops, o.Cost)
	require.NotNil(t, o.Distance)
	require.NotNil(t, o.OnExpand)
	assert.InDelta(t, 111.19, o.Distance(geo.Coordinate{}, geo.Coordinate{Lat: 1}), 0.01)
}

// TestSetup_Errors covers nil graphs, unknown endpoints and bad options.
func TestSetup_Errors(t *testing.T) {
	g := smallGraph(t)

	_, err := search.Setup(nil, "A", "B", nil)
	assert.ErrorIs(t, err, search.ErrGraphNil)

	_, err = search.Setup(g, "A", "Nowhere", nil)
	assert.ErrorIs(t, err, search.ErrUnknownCity)
	assert.ErrorIs(t, err, core.ErrCityNotFound)
	assert.Contains(t, err.Error(), `"Nowhere"`)

	_, err = search.Setup(g, "Ghost", "A", nil)
	assert.ErrorIs(t, err, search.ErrUnknownCity, "adjacency-only cities are not valid endpoints")

	_, err = search.Setup(g, "A", "B", []search.Option{search.WithMaxDepth(-2)})
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Setup(g, "A", "B", []search.Option{search.WithCostModel(search.CostModel(9))})
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestSetup_AppliesOptions(t *testing.T) {
	g := smallGraph(t)
	calls := 0
	o, err := search.Setup(g, "A", "B", []search.Option{
		search.WithMaxDepth(3),
		search.WithCostModel(search.CostDistance),
		search.WithDistance(func(_, _ geo.Coordinate) float64 { return 42 }),
		search.WithOnExpand(func(string, int) { calls++ }),
		search.WithDistance(nil),
		search.WithOnExpand(nil),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, o.MaxDepth)
	assert.Equal(t, search.CostDistance, o.Cost)

	h, err := o.Estimate(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 42.0, h)

	o.OnExpand("A", 0)
	assert.Equal(t, 1, calls)
}

func TestEstimate_MissingCoordinates(t *testing.T) {
	g := smallGraph(t)
	o := search.DefaultOptions()

	_, err := o.Estimate(g, "Ghost", "B")
	assert.ErrorIs(t, err, search.ErrUnknownCity)

	_, err = o.Estimate(g, "A", "Ghost")
	assert.ErrorIs(t, err, search.ErrUnknownCity)
}

func TestResult_Distance(t *testing.T) {
	g := smallGraph(t)

	var nilRes *search.Result
	d, err := nilRes.Distance(g)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	d, err = search.Exhausted("bfs", 3).Distance(g)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	res := search.Found("bfs", core.Path{"A", "B"}, 2)
	assert.Equal(t, 1, res.Depth)
	d, err = res.Distance(g)
	require.NoError(t, err)
	assert.InDelta(t, 111.19, d, 0.01)
}

func TestCostModel_String(t *testing.T) {
	assert.Equal(t, "hops", search.CostHops.String())
	assert.Equal(t, "distance", search.CostDistance.String())
	assert.Equal(t, "CostModel(7)", search.CostModel(7).String())
}
