// Package level loads navigation levels from YAML.
//
// A level names a rectangular patch of the X/Z plane, the node radius used
// to sample it, a set of static obstacles on named layers, and a table of
// named waypoints. Build turns it into a collide.World and a spatial.Grid
// ready for astar:
//
//	lv, err := level.Load("courtyard.yaml")
//	if err != nil { ... }
//	g, err := lv.Grid()
//	from, _ := lv.Waypoint("gate")
//	to, _ := lv.Waypoint("well")
//	res, err := astar.FindPath(ctx, g, from, to)
//
// Layers are named bits. Obstacles without a layer go on the first one.
// Unwalkable lists the layers that block movement; when empty every layer
// blocks. Watcher reports edits to level files so a caller can reload.
package level
