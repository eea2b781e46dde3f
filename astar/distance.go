package astar

import "github.com/katalvlaran/navgrid/spatial"

// Distance returns the octile distance between (ax,ay) and (bx,by):
// DiagonalCost per diagonal step plus StraightCost per remaining straight step.
func Distance(ax, ay, bx, by int) int {
	dx, dy := abs(ax-bx), abs(ay-by)
	if dx > dy {
		return DiagonalCost*dy + StraightCost*(dx-dy)
	}

	return DiagonalCost*dx + StraightCost*(dy-dx)
}

// CellDistance is Distance over the grid coordinates of two cells.
func CellDistance(a, b spatial.Cell) int {
	return Distance(a.X, a.Y, b.X, b.Y)
}

// PathCost sums the step costs of walking from start along path.
// It returns the same value as Result.Cost for a path produced by Search.
func PathCost(start spatial.Cell, path []spatial.Cell) int {
	cost := 0
	prev := start
	for _, c := range path {
		cost += CellDistance(prev, c)
		prev = c
	}

	return cost
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
