// Package greedy finds a route between two cities with greedy best-first search.
//
// The frontier is a stable min-priority queue keyed only by the heuristic
// h(city) = distance(city, end). The seed is (start, empty path) keyed by
// h(start). Popping end terminates the search; otherwise an unvisited city is
// marked and every unvisited neighbor is pushed keyed by its own h. Equal
// keys pop in insertion order.
//
// No accumulated cost is tracked, so the route may be longer than optimal in
// both hops and kilometers: the search chases proximity to the goal only.
//
// Every city the heuristic touches must have a coordinate; a neighbor without
// one aborts the search with search.ErrUnknownCity.
//
// Complexity: O((V + E) log E) time, O(E) frontier entries.
package greedy
