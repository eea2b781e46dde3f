// Package spatial discretizes a rectangular region of a 3D world into a
// fixed 2D grid of walkable and blocked cells.
//
// What:
//
//   - Grid covers a WorldSize rectangle centred on Origin in the X/Z plane
//     (Y is up), split into square cells of diameter 2·NodeRadius.
//   - Each cell is classified once, at build time, by an injected
//     WalkableFunc (typically a collision query against the scene).
//   - World points map to cells through CellFromWorldPoint, which clamps
//     out-of-range points to the nearest edge cell and never fails.
//   - Neighbors enumerates the up-to-8 cells of the surrounding 3×3 block.
//   - Regions labels 8-connected components of walkable cells so callers
//     can reject unreachable queries without searching.
//
// Why:
//
//   - Game and simulation navigation: turn a collision world into a graph
//     that A* (see package astar) can search.
//   - Cheap reachability checks: two cells are mutually reachable iff they
//     share a region.
//
// Complexity:
//
//   - New:                O(W×H) predicate calls, Memory: O(W×H).
//   - CellFromWorldPoint: O(1).
//   - Neighbors:          O(1), at most 8 results.
//   - Regions:            O(W×H×8), computed once per grid.
//
// Errors:
//
//   - ErrBadRadius:    NodeRadius is not a positive finite number.
//   - ErrBadWorldSize: WorldSize has a non-positive or non-finite axis.
//   - ErrNilWalkable:  no WalkableFunc supplied.
//   - ErrEmptyGrid:    rounding produced zero columns or rows.
package spatial
