package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/citysearch/bfs"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/geo"
)

// ExampleSearch finds the fewest-hop route between routers of a small ring.
func ExampleSearch() {
	b := core.NewBuilder()
	for i, name := range []string{"R1", "R2", "R3", "R4", "R5", "R6"} {
		_ = b.AddCity(name, geo.Coordinate{Lat: float64(i), Lon: 0})
	}
	for _, e := range [][2]string{{"R1", "R2"}, {"R2", "R3"}, {"R1", "R4"}, {"R4", "R5"}, {"R2", "R5"}, {"R5", "R6"}} {
		_ = b.AddEdge(e[0], e[1])
	}

	res, err := bfs.Search(b.Build(), "R1", "R6")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Path.Hops())
	// Output:
	// R1 -> R2 -> R5 -> R6 3
}
