package core

import (
	"fmt"

	"github.com/katalvlaran/citysearch/geo"
)

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		coords:    make(map[string]geo.Coordinate),
		adjacency: make(map[string][]string),
	}
}

// AddCity registers name with coordinate c.
// Re-adding an existing name replaces its coordinate (last write wins).
func (b *Builder) AddCity(name string, c geo.Coordinate) error {
	if name == "" {
		return ErrEmptyCity
	}
	b.coords[name] = c

	return nil
}

// AddEdge inserts the undirected edge u–v by appending v to u's neighbor list
// and u to v's. Parallel edges are not collapsed and self-loops are kept as
// two entries in the same list.
func (b *Builder) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return fmt.Errorf("%w: edge %q–%q", ErrEmptyCity, u, v)
	}
	b.adjacency[u] = append(b.adjacency[u], v)
	b.adjacency[v] = append(b.adjacency[v], u)
	b.edges++

	return nil
}

// Build returns a Graph snapshot of everything added so far. Later calls on
// the Builder do not affect graphs it already built.
func (b *Builder) Build() *Graph {
	g := &Graph{
		coords:    make(map[string]geo.Coordinate, len(b.coords)),
		adjacency: make(map[string][]string, len(b.adjacency)),
		edges:     b.edges,
	}
	for name, c := range b.coords {
		g.coords[name] = c
	}
	for name, nbs := range b.adjacency {
		g.adjacency[name] = append([]string(nil), nbs...)
	}

	return g
}
