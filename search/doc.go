// Package search defines the contract shared by the five route-finding
// strategies (packages bfs, dfs, iddfs, greedy, astar): functional options,
// the Result type, sentinel errors, and endpoint validation.
//
// Every strategy has the signature
//
//	func Search(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error)
//
// and follows the same state machine: the frontier is seeded (Idle), the
// pop/mark/push loop runs (Expanding), and the search ends in Found or
// Exhausted. A search owns its frontier and visited set; the graph is only
// read. Strategies are deterministic for a fixed graph.
//
// Outcomes
//
//   - Found:     Result.Found == true, Result.Path runs from start to end.
//   - Exhausted: Result.Found == false, nil error. "No path" is a normal outcome.
//   - Error:     ErrGraphNil, ErrUnknownCity (fail-fast precondition), or
//     ErrOptionViolation. Result is nil.
//
// Options
//
//   - WithDistance(fn)   heuristic for greedy and A*; default geo.Haversine.
//   - WithOnExpand(fn)   hook invoked each time a city is marked visited.
//   - WithMaxDepth(d)    depth bound for iterative deepening; default unbounded.
//   - WithCostModel(m)   g-term of A*; default CostHops.
//
// Unbounded iterative deepening never returns for a disconnected pair. Only
// call iddfs.Search without WithMaxDepth when connectivity is already known.
package search
