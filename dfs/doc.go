// Package dfs finds a route between two cities with depth-first search.
//
// The frontier is a LIFO stack seeded with (start, empty path). Popping an
// entry whose city equals end terminates the search; otherwise an unvisited
// city is marked and every unvisited neighbor is pushed in adjacency order,
// so the last-inserted neighbor is explored first.
//
// There is no shortest-path guarantee: the route returned is the first one
// met in depth-first order, which depends on neighbor-list ordering (and so
// on the order the adjacency file was read).
//
// Complexity: O(V + E) time, O(E) frontier entries.
package dfs
