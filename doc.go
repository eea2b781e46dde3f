// Package navgrid is a grid pathfinder for game-style worlds: sample a
// patch of the X/Z plane into square cells, mark the ones obstacles cover,
// and find the cheapest 8-way route between two points with A*.
//
// 🚀 What is navgrid?
//
//	A small, dependency-light toolkit made of:
//		• spatial: the cell grid, world↔cell mapping, neighbours, walkable regions
//		• pqueue: a generic indexed binary min-heap with decrease-key
//		• astar: the search itself, octile costs 10/14, per-search state
//		• collide: static obstacle worlds on Chipmunk2D (circles, boxes, layers)
//		• level: YAML level files and a file watcher for live reload
//		• render: text rendering of grids and paths for terminals and tests
//
// ✨ Why navgrid?
//
//   - Grids are immutable after build; any number of searches may share one
//   - Every search owns its scratch state, so concurrent queries are safe
//   - Disconnected queries are rejected from region labels without expanding
//   - Deterministic: identical inputs give identical paths
//
// Quick start:
//
//	g, _ := spatial.FromRows(0.5,
//		"....",
//		".##.",
//		"....",
//	)
//	res, err := astar.FindPath(ctx, g, from, to)
//	if errors.Is(err, astar.ErrNoPath) { ... }
//	for _, p := range res.Waypoints() { ... }
//
// The navgrid command loads a level file and prints the route:
//
//	go run ./cmd/navgrid -level level/testdata/courtyard.yaml -from gate -to well
//
// Runnable scenarios live under examples/.
package navgrid
