// Package bfs finds a fewest-hop route between two cities with breadth-first search.
//
// What
//
//   - FIFO frontier seeded with (start, empty path).
//   - Visitation is checked when an entry is dequeued, not when it is enqueued,
//     so a city can sit in the queue several times (parallel edges, multiple
//     parents) before it is marked.
//   - The first dequeued entry whose city equals end terminates the search.
//
// Guarantee
//
//	Edges carry no weight, so the first route found has the minimum number
//	of edges among all routes from start to end.
//
// Complexity (V = cities, E = edges, parallel edges included)
//
//   - Time:   O(V + E)
//   - Memory: O(E) frontier entries, each sharing its parent chain.
//
// Usage
//
//	res, err := bfs.Search(g, "Abilene", "Wichita")
//	if err != nil {
//		// search.ErrGraphNil, search.ErrUnknownCity or search.ErrOptionViolation
//	}
//	if res.Found {
//		fmt.Println(res.Path)
//	}
package bfs
