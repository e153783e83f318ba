// Package astar finds a route between two cities with A* search.
//
// Ordering
//
//	Entries are popped by f = g + h, lowest first, ties in insertion order.
//	  h = distance(city, end)           (search.WithDistance, default haversine km)
//	  g = cost of the route to the city (search.WithCostModel)
//
// Cost models
//
//   - search.CostHops (default): g is the number of edges traversed. This mixes
//     hops and kilometers, so h dominates f and the heuristic is not admissible
//     in the classical sense. This is the established behavior and is kept as is.
//   - search.CostDistance (opt-in): g accumulates the distance function over the
//     route's edges, giving classical A* over haversine edge lengths.
//
// Loop
//
//  1. Seed (start, empty path) with g = 0, f = h(start).
//  2. Pop the lowest f. If it is end, return its path.
//  3. If unvisited: mark it and push every unvisited neighbor with
//     g = g(parent) + step, f = g + h(neighbor).
//  4. An empty frontier means no path.
//
// A neighbor without coordinates aborts the search with search.ErrUnknownCity.
//
// Complexity: O((V + E) log E) time, O(E) frontier entries.
package astar
