// Package loader reads the two plain-text inputs of citysearch into a core.Graph.
//
// Coordinates file, one city per line:
//
//	Abilene,38.9165,-97.2136
//	Wichita, 37.6872, -97.3301
//
// Adjacency file, one undirected edge per line, whitespace separated:
//
//	Abilene Salina
//	Salina  Lindsborg
//
// Blank lines are skipped in both files; tokens past the second on an
// adjacency line are ignored. Any other malformed line stops the load with
// an error naming the line number (errors.Is(err, ErrMalformed)).
package loader
