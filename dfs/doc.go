// Package dfs provides a depth-first, iterative-deepening enumeration of
// transition sequences over the same bfs.Problem the breadth-first search
// consumes.
//
// What
//
//   - Shortest tries every sequence of 0, 1, 2, … transitions up to a depth
//     limit and stops at the first length that reaches an accepted state.
//   - No state deduplication: the enumeration shares no logic with bfs, so
//     agreeing results are meaningful evidence that a bfs path is shortest.
//
// Why
//
//	Exhaustive small-depth enumeration is the reference check for the
//	fewest-presses guarantee of bfs.Search. It is exponential and meant for
//	short paths and small key sets.
//
// Usage
//
//	res, err := dfs.Shortest(problem, 6, dfs.WithContext(ctx))
//	if errors.Is(err, dfs.ErrNotFound) {
//	    // nothing within six presses
//	}
package dfs
