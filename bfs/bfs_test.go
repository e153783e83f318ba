package bfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysearch/bfs"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/internal/testgraph"
	"github.com/katalvlaran/citysearch/search"
)

// TestSearch_Errors verifies that invalid inputs fail fast.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, "A", "B")
	assert.ErrorIs(t, err, search.ErrGraphNil)

	g := testgraph.Line()
	_, err = bfs.Search(g, "A", "Nowhere")
	assert.ErrorIs(t, err, search.ErrUnknownCity)
	_, err = bfs.Search(g, "Nowhere", "A")
	assert.ErrorIs(t, err, search.ErrUnknownCity)
}

// TestSearch_Line covers the three-city scenario and its distance.
func TestSearch_Line(t *testing.T) {
	g := testgraph.Line()
	res, err := bfs.Search(g, "A", "C")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, core.Path{"A", "B", "C"}, res.Path)
	assert.Equal(t, bfs.Name, res.Strategy)
	assert.Equal(t, 2, res.Depth)

	km, err := res.Distance(g)
	require.NoError(t, err)
	assert.InDelta(t, 222.4, km, 0.05)
}

// TestSearch_NoPath checks a target with coordinates but no adjacency.
func TestSearch_NoPath(t *testing.T) {
	res, err := bfs.Search(testgraph.Line(), "A", "D")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 3, res.Expanded)

	res, err = bfs.Search(testgraph.Islands(), "A", "Y")
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestSearch_SameCity(t *testing.T) {
	res, err := bfs.Search(testgraph.Line(), "B", "B")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, core.Path{"B"}, res.Path)
	assert.Equal(t, 0, res.Expanded)
}

// TestSearch_FewestHops prefers the 2-hop detour over the 3-hop straight line.
func TestSearch_FewestHops(t *testing.T) {
	res, err := bfs.Search(testgraph.Detour(), "S", "G")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"S", "M", "G"}, res.Path)
	assert.Equal(t, 3, res.Expanded)
}

// TestSearch_DuplicateEdges ensures parallel edges never produce repeated cities.
func TestSearch_DuplicateEdges(t *testing.T) {
	g := testgraph.Duplicated()
	for _, q := range [][2]string{{"A", "C"}, {"C", "A"}, {"A", "B"}, {"B", "A"}} {
		res, err := bfs.Search(g, q[0], q[1])
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.NoError(t, res.Path.Validate(q[0], q[1]))
	}
}

// TestSearch_OnExpand asserts hook order and hop counts.
func TestSearch_OnExpand(t *testing.T) {
	var seen []string
	res, err := bfs.Search(testgraph.Line(), "A", "C",
		search.WithOnExpand(func(city string, hops int) {
			seen = append(seen, fmt.Sprintf("%s@%d", city, hops))
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A@0", "B@1"}, seen)
	assert.Equal(t, 2, res.Expanded)
}

func TestSearch_Deterministic(t *testing.T) {
	g := testgraph.Random(3, 60, 120)
	first, err := bfs.Search(g, testgraph.Name(0), testgraph.Name(59))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := bfs.Search(g, testgraph.Name(0), testgraph.Name(59))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestSearch_ConcurrentSafety runs searches over one shared graph in parallel.
func TestSearch_ConcurrentSafety(t *testing.T) {
	g := testgraph.Chain(50)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, err := bfs.Search(g, testgraph.Name(0), testgraph.Name(49))
			if err == nil && res.Path.Hops() != 49 {
				err = fmt.Errorf("hops = %d; want 49", res.Path.Hops())
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		assert.NoError(t, <-errs)
	}
}
