// Package astar finds shortest walkable paths on a spatial.Grid using A*.
//
// The open set is a pqueue.Heap ordered by (fCost, hCost) ascending, so among
// equally promising cells the one heuristically closer to the target is
// expanded first. The closed set records expanded cells; a cell is expanded
// at most once, which bounds every search by the grid size.
//
// Cost model:
//
//	Moving to an orthogonal neighbor costs StraightCost (10), to a diagonal
//	neighbor DiagonalCost (14 ≈ 10·√2). The heuristic is the octile
//	distance under the same weights, which is admissible and consistent,
//	so returned paths are optimal.
//
// Search state (g/h costs, predecessor, heap slot) lives in a table owned by
// a single call, never in the grid. Any number of searches may run over the
// same *spatial.Grid concurrently.
//
// Results:
//
//   - Found path:    Result.Found, Result.Path from the first step after the
//     start cell up to and including the target.
//   - Same cell:     Result.Found with an empty Path and zero Cost.
//   - No path:       ErrNoPath with Result.Found == false.
//   - Cancelled:     ctx.Err(), checked before every expansion.
//
// Complexity:
//
//   - Time:  O(N log N) for N = grid cells, each expanded at most once.
//   - Space: O(N) for the state table, open and closed sets.
package astar
