package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/citysearch/geo"
)

// HasCity reports whether name is present in the coordinate table.
// This is the membership test callers use to validate query endpoints.
func (g *Graph) HasCity(name string) bool {
	_, ok := g.coords[name]

	return ok
}

// Coordinate returns the coordinate of name, or ErrCityNotFound.
func (g *Graph) Coordinate(name string) (geo.Coordinate, error) {
	c, ok := g.coords[name]
	if !ok {
		return geo.Coordinate{}, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}

	return c, nil
}

// Neighbors returns a copy of name's neighbor list in insertion order,
// duplicates included. Unknown or isolated cities yield nil.
func (g *Graph) Neighbors(name string) []string {
	nbs := g.adjacency[name]
	if len(nbs) == 0 {
		return nil
	}

	return append([]string(nil), nbs...)
}

// Degree returns the length of name's neighbor list (parallel edges counted).
func (g *Graph) Degree(name string) int {
	return len(g.adjacency[name])
}

// Cities returns every city of the coordinate table, sorted lexicographically.
func (g *Graph) Cities() []string {
	out := make([]string, 0, len(g.coords))
	for name := range g.coords {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// CityCount returns the size of the coordinate table.
func (g *Graph) CityCount() int { return len(g.coords) }

// EdgeCount returns the number of undirected edges inserted, parallel edges included.
func (g *Graph) EdgeCount() int { return g.edges }

// PathDistance sums the haversine distance over consecutive cities of p.
// Every city of p must have a coordinate.
func (g *Graph) PathDistance(p Path) (float64, error) {
	coords := make([]geo.Coordinate, 0, len(p))
	for _, name := range p {
		c, err := g.Coordinate(name)
		if err != nil {
			return 0, err
		}
		coords = append(coords, c)
	}

	return geo.PathLength(coords, geo.Haversine), nil
}
