// Package citysearch finds routes between named cities of a small undirected
// graph with one of five classical search strategies, and reports the route
// with its great-circle length.
//
// What is inside?
//
//	geo/       haversine distance, the heuristic and the route length measure
//	core/      immutable city Graph (coordinates + ordered adjacency), Builder, Path
//	search/    options, Result and errors shared by every strategy
//	bfs/       breadth-first search (fewest hops)
//	dfs/       depth-first search
//	iddfs/     iterative-deepening DFS (fewest hops, linear memory)
//	greedy/    greedy best-first search on distance-to-goal
//	astar/     A* on hops + distance-to-goal
//	loader/    coordinate CSV and adjacency file readers
//	config/    YAML/.env/environment configuration
//
// This package ties the strategies together behind a Strategy selector:
//
//	s, _ := citysearch.ParseStrategy("astar")
//	res, err := citysearch.Run(g, s, "Abilene", "Wichita")
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
// BFS, DFS, greedy and A* always terminate. Iterative deepening terminates only
// when a route exists or a depth bound is given (search.WithMaxDepth).
package citysearch
