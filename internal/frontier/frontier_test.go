package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/internal/frontier"
)

func TestEntry_Path(t *testing.T) {
	root := frontier.Root("A", 0)
	b := root.Child("B", 0)
	c := b.Child("C", 0)
	alt := b.Child("D", 0)

	assert.Equal(t, core.Path{"A"}, root.Path())
	assert.Equal(t, core.Path{"A", "B", "C"}, c.Path())
	assert.Equal(t, core.Path{"A", "B", "D"}, alt.Path(), "siblings share the parent chain")
	assert.Equal(t, 2, c.Hops)
	assert.Same(t, b, c.Parent)
}

func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue(0)
	for _, city := range []string{"A", "B", "C"} {
		q.Push(frontier.Root(city, 0))
	}
	require.Equal(t, 3, q.Len())

	var got []string
	for q.Len() > 0 {
		got = append(got, q.Pop().City)
	}
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack(1)
	for _, city := range []string{"A", "B", "C"} {
		s.Push(frontier.Root(city, 0))
	}

	var got []string
	for s.Len() > 0 {
		got = append(got, s.Pop().City)
	}
	assert.Equal(t, []string{"C", "B", "A"}, got)
}

// TestMinQueue_StableTies checks that equal priorities pop in insertion order.
func TestMinQueue_StableTies(t *testing.T) {
	q := frontier.NewMinQueue(0)
	q.Push(frontier.Root("late", 2))
	q.Push(frontier.Root("first", 1))
	q.Push(frontier.Root("second", 1))
	q.Push(frontier.Root("zero", 0))
	q.Push(frontier.Root("third", 1))

	var got []string
	for q.Len() > 0 {
		got = append(got, q.Pop().City)
	}
	assert.Equal(t, []string{"zero", "first", "second", "third", "late"}, got)
}

// TestMinQueue_RandomOrder compares against a stable sort over many random keys.
func TestMinQueue_RandomOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	type kv struct {
		seq int
		key float64
	}
	q := frontier.NewMinQueue(500)
	want := make([]kv, 0, 500)
	for i := 0; i < 500; i++ {
		key := float64(rnd.Intn(20))
		want = append(want, kv{seq: i, key: key})
		e := frontier.Root("", key)
		e.Hops = i
		q.Push(e)
	}
	sort.SliceStable(want, func(i, j int) bool { return want[i].key < want[j].key })

	for _, w := range want {
		e := q.Pop()
		require.Equal(t, w.key, e.Priority)
		require.Equal(t, w.seq, e.Hops)
	}
	assert.Equal(t, 0, q.Len())
}

func TestEntry_Step(t *testing.T) {
	root := frontier.Root("A", 5)
	b := root.Step("B", 1.5, 3)
	c := b.Step("C", 2, 1)
	d := c.Child("D", 0)

	assert.Equal(t, 0.0, root.Cost)
	assert.Equal(t, 1.5, b.Cost)
	assert.Equal(t, 3.5, c.Cost)
	assert.Equal(t, 3.5, d.Cost, "Child carries the parent's cost unchanged")
	assert.Equal(t, 1.0, c.Priority)
	assert.Equal(t, 3, d.Hops)
}
