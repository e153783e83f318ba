// Package core defines the city graph consumed by every search strategy:
// an immutable mapping from city name to geographic coordinate, plus an
// ordered, undirected adjacency list between city names.
//
// The Graph G = (V, E) has these properties:
//
//   - Cities are exact-string keys (no case folding); the empty name is rejected.
//   - Coordinates live in a separate table. A city may appear in the adjacency
//     list without a coordinate (garbage-in); it is only detected when a
//     heuristic needs it.
//   - Every AddEdge(a, b) appends b to a's neighbor list AND a to b's list.
//   - Parallel edges are kept: inserting the same pair twice leaves duplicate
//     entries in both neighbor lists. Searches tolerate this through their
//     visited sets.
//   - Neighbor lists preserve insertion order, so every strategy is fully
//     deterministic for a fixed input order.
//
// Lifecycle:
//
//	b := core.NewBuilder()
//	_ = b.AddCity("A", geo.Coordinate{Lat: 0, Lon: 0})
//	_ = b.AddCity("B", geo.Coordinate{Lat: 1, Lon: 0})
//	_ = b.AddEdge("A", "B")
//	g := b.Build() // independent, read-only snapshot
//
// A built *Graph is never mutated, so it may be shared by reference across
// any number of searches, including concurrent ones.
//
// Errors:
//
//	ErrEmptyCity     - a city name is the empty string.
//	ErrCityNotFound  - a lookup referenced a city absent from the coordinate table.
//	ErrInvalidPath   - a Path failed Validate.
package core
