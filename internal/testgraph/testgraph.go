// Package testgraph provides deterministic city graphs for tests and benchmarks.
package testgraph

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/geo"
)

// City is one fixture row.
type City struct {
	Name string
	Lat  float64
	Lon  float64
}

// Build inserts cities then edges, in order, and panics on builder errors.
func Build(cities []City, edges [][2]string) *core.Graph {
	b := core.NewBuilder()
	for _, c := range cities {
		if err := b.AddCity(c.Name, geo.Coordinate{Lat: c.Lat, Lon: c.Lon}); err != nil {
			panic(err)
		}
	}
	for _, e := range edges {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			panic(err)
		}
	}

	return b.Build()
}

// Line is A(0,0)–B(1,0)–C(2,0) with D(3,0) present only in the coordinate table.
func Line() *core.Graph {
	return Build(
		[]City{{"A", 0, 0}, {"B", 1, 0}, {"C", 2, 0}, {"D", 3, 0}},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)
}

// Duplicated is Line with the A–B edge inserted twice more, once reversed.
func Duplicated() *core.Graph {
	return Build(
		[]City{{"A", 0, 0}, {"B", 1, 0}, {"C", 2, 0}, {"D", 3, 0}},
		[][2]string{{"A", "B"}, {"A", "B"}, {"B", "C"}, {"B", "A"}},
	)
}

// Detour offers two routes from S(0,0) to G(3,0):
//
//	S–M–G    2 hops through M(1.5,-2), far off the straight line
//	S–P–Q–G  3 hops along the meridian through P(1,0) and Q(2,0)
//
// Neighbor lists: S:[M P] M:[S G] P:[S Q] Q:[P G] G:[M Q].
func Detour() *core.Graph {
	return Build(
		[]City{{"S", 0, 0}, {"M", 1.5, -2}, {"P", 1, 0}, {"Q", 2, 0}, {"G", 3, 0}},
		[][2]string{{"S", "M"}, {"S", "P"}, {"M", "G"}, {"P", "Q"}, {"Q", "G"}},
	)
}

// Trap lures distance-greedy searches. From S(0,0) to G(0,4):
//
//	S–V–G    2 hops, ≈497 km through V(-1,2)
//	S–T–U–G  3 hops, ≈588 km through T(0,3), which looks closest to G
//
// Neighbor lists: S:[T V] T:[S U] V:[S G] U:[T G] G:[U V].
func Trap() *core.Graph {
	return Build(
		[]City{{"S", 0, 0}, {"T", 0, 3}, {"V", -1, 2}, {"U", 0.5, 4.5}, {"G", 0, 4}},
		[][2]string{{"S", "T"}, {"S", "V"}, {"T", "U"}, {"U", "G"}, {"V", "G"}},
	)
}

// Ghost links A to a city that has no coordinates: A(0,0)–Ghost, A–B(1,0).
func Ghost() *core.Graph {
	return Build(
		[]City{{"A", 0, 0}, {"B", 1, 0}},
		[][2]string{{"A", "Ghost"}, {"A", "B"}},
	)
}

// Islands has two components, {A,B} and {X,Y}.
func Islands() *core.Graph {
	return Build(
		[]City{{"A", 0, 0}, {"B", 0, 1}, {"X", 10, 10}, {"Y", 10, 11}},
		[][2]string{{"A", "B"}, {"X", "Y"}},
	)
}

// Chain builds c0–c1–…–c(n-1) along the equator, one degree apart.
func Chain(n int) *core.Graph {
	cities := make([]City, n)
	edges := make([][2]string, 0, n)
	for i := 0; i < n; i++ {
		cities[i] = City{Name: Name(i), Lat: 0, Lon: float64(i)}
		if i > 0 {
			edges = append(edges, [2]string{Name(i - 1), Name(i)})
		}
	}

	return Build(cities, edges)
}

// Random builds n cities in a 20°×20° box and m random edges. Parallel edges
// and self-loops may occur; the result is fully determined by seed.
func Random(seed int64, n, m int) *core.Graph {
	rnd := rand.New(rand.NewSource(seed))
	cities := make([]City, n)
	for i := range cities {
		cities[i] = City{Name: Name(i), Lat: rnd.Float64() * 20, Lon: rnd.Float64() * 20}
	}
	edges := make([][2]string, m)
	for i := range edges {
		edges[i] = [2]string{Name(rnd.Intn(n)), Name(rnd.Intn(n))}
	}

	return Build(cities, edges)
}

// Name returns the fixture name of the i-th generated city.
func Name(i int) string { return fmt.Sprintf("c%d", i) }
