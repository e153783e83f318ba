package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysearch"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/internal/query"
	"github.com/katalvlaran/citysearch/internal/testgraph"
	"github.com/katalvlaran/citysearch/search"
)

func TestNewRunner_Bound(t *testing.T) {
	g := testgraph.Line()
	assert.Equal(t, g.CityCount(), query.NewRunner(g, -1).DepthBound)
	assert.Equal(t, 2, query.NewRunner(g, 2).DepthBound)
}

func TestRunner_Run(t *testing.T) {
	r := query.NewRunner(testgraph.Line(), -1)

	rep, err := r.Run(citysearch.AStar, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, citysearch.AStar, rep.Strategy)
	assert.Equal(t, core.Path{"A", "B", "C"}, rep.Result.Path)
	assert.InDelta(t, 222.4, rep.DistanceKm, 0.05)

	// the default bound lets iterative deepening give up on an isolated city
	rep, err = r.Run(citysearch.IterativeDeepening, "A", "D")
	require.NoError(t, err)
	assert.False(t, rep.Result.Found)
	assert.Zero(t, rep.DistanceKm)

	_, err = r.Run(citysearch.BreadthFirst, "A", "Z")
	assert.ErrorIs(t, err, search.ErrUnknownCity)
}

func TestRunner_Compare(t *testing.T) {
	r := query.NewRunner(testgraph.Detour(), -1)
	reports, err := r.Compare("S", "G")
	require.NoError(t, err)
	require.Len(t, reports, 5)

	hops := make([]int, len(reports))
	for i, rep := range reports {
		assert.Equal(t, citysearch.Strategies()[i], rep.Strategy)
		require.True(t, rep.Result.Found)
		hops[i] = rep.Result.Path.Hops()
	}
	assert.Equal(t, []int{2, 3, 2, 3, 3}, hops)

	_, err = r.Compare("S", "nowhere")
	assert.ErrorIs(t, err, search.ErrUnknownCity)
}
