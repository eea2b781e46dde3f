package spatial

// labelRegions assigns every walkable cell the index of its 8-connected
// component of walkable cells; blocked cells get -1. Components are numbered
// in row-major order of their first cell.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for labels and the BFS queue.
func (g *Grid) labelRegions() {
	total := len(g.cells)
	g.regions = make([]int, total)
	for i := range g.regions {
		g.regions[i] = -1
	}

	queue := make([]int, 0, total)
	for i0 := 0; i0 < total; i0++ {
		if !g.cells[i0].Walkable || g.regions[i0] >= 0 {
			continue
		}
		label := g.numRegions
		g.numRegions++

		// BFS to flood the component
		g.regions[i0] = label
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.Index(vx, vy)
				if g.cells[vi].Walkable && g.regions[vi] < 0 {
					g.regions[vi] = label
					queue = append(queue, vi)
				}
			}
		}
	}
}

// RegionCount returns the number of walkable components.
func (g *Grid) RegionCount() int { return g.numRegions }

// Region returns the component label of c, or -1 if c is blocked.
func (g *Grid) Region(c Cell) int {
	if !g.InBounds(c.X, c.Y) {
		return -1
	}

	return g.regions[g.Index(c.X, c.Y)]
}

// Connected reports whether a and b are walkable and in the same component,
// i.e. whether a walk between them exists over 8-connected walkable cells.
func (g *Grid) Connected(a, b Cell) bool {
	ra := g.Region(a)
	return ra >= 0 && ra == g.Region(b)
}

// Regions returns every walkable component as a slice of row-major cell
// indices in ascending order. Use Coordinate to convert back to (x,y).
//
// Time: O(W·H).
func (g *Grid) Regions() [][]int {
	comps := make([][]int, g.numRegions)
	for i, r := range g.regions {
		if r >= 0 {
			comps[r] = append(comps[r], i)
		}
	}

	return comps
}
