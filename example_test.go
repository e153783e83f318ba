package citysearch_test

import (
	"fmt"

	"github.com/katalvlaran/citysearch"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/geo"
)

// ExampleRun runs every strategy on a small square with one diagonal.
//
//	NW───NE
//	│  ╲  │
//	SW───SE
func ExampleRun() {
	b := core.NewBuilder()
	_ = b.AddCity("NW", geo.Coordinate{Lat: 1, Lon: 0})
	_ = b.AddCity("NE", geo.Coordinate{Lat: 1, Lon: 1})
	_ = b.AddCity("SW", geo.Coordinate{Lat: 0, Lon: 0})
	_ = b.AddCity("SE", geo.Coordinate{Lat: 0, Lon: 1})
	_ = b.AddEdge("NW", "NE")
	_ = b.AddEdge("NW", "SW")
	_ = b.AddEdge("SW", "SE")
	_ = b.AddEdge("NE", "SE")
	_ = b.AddEdge("NW", "SE")
	g := b.Build()

	for _, s := range citysearch.Strategies() {
		res, err := citysearch.Run(g, s, "SW", "NE")
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%-20s %s\n", s, res.Path)
	}
	// Output:
	// breadth-first        SW -> NW -> NE
	// depth-first          SW -> SE -> NW -> NE
	// iterative-deepening  SW -> NW -> NE
	// greedy-best-first    SW -> NW -> NE
	// a-star               SW -> NW -> NE
}
