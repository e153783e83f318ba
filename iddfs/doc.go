// Package iddfs finds a fewest-hop route between two cities with
// iterative-deepening depth-first search.
//
// Algorithm
//
//  1. For d = 0, 1, 2, … run a depth-limited probe from start with a fresh
//     visited set.
//  2. At remaining depth 0 a probe succeeds iff the current city is end.
//  3. Otherwise the current city is marked, each unvisited neighbor is tried
//     with remaining depth − 1, and a success is prefixed with the current city.
//  4. When every neighbor fails the city is unmarked, so other branches of the
//     same probe may pass through it again.
//
// The probe keeps an explicit frame stack instead of recursing: each frame
// owns its city, remaining depth and neighbor cursor, and the visited set
// always equals the set of cities on the stack.
//
// Termination
//
//	Without a bound the outer loop never ends when start and end are in
//	different components. Only call Search unbounded when connectivity is
//	already known; otherwise pass search.WithMaxDepth(d). Exhausting the
//	bound is reported as no path (Result.Found == false, nil error).
//	A bound of CityCount()-1 can never hide an existing route.
//
// Complexity
//
//   - Time:   O(b^d) per probe (b = branching factor), repeated for every bound.
//   - Memory: O(d) frames.
package iddfs
