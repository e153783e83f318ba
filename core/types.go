package core

import (
	"errors"

	"github.com/katalvlaran/citysearch/geo"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyCity indicates that a city name is the empty string.
	ErrEmptyCity = errors.New("core: city name is empty")

	// ErrCityNotFound indicates a lookup of a city absent from the coordinate table.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrInvalidPath indicates that a Path violates the route contract.
	ErrInvalidPath = errors.New("core: invalid path")
)

// Graph is the read-only city graph.
//
// coords holds the coordinate table; adjacency holds neighbor lists in
// insertion order, duplicates included. edges counts AddEdge calls.
type Graph struct {
	coords    map[string]geo.Coordinate
	adjacency map[string][]string
	edges     int
}

// Builder accumulates cities and edges and produces Graph snapshots.
// A Builder is not safe for concurrent use.
type Builder struct {
	coords    map[string]geo.Coordinate
	adjacency map[string][]string
	edges     int
}
