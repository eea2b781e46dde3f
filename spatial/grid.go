// Package spatial provides the navigation grid used by the astar package:
// construction from a walkability predicate, world-to-cell mapping and
// neighbor enumeration.
package spatial

import "math"

// neighborOffsets lists the 3×3 block around a cell minus the cell itself,
// column offset outermost. Neighbors always returns cells in this order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is an immutable 2D array of Cells covering a world rectangle.
// A Grid is safe for concurrent reads once New returns.
type Grid struct {
	origin     Vec3
	size       Vec2
	span       Vec2 // cols·d by rows·d, the area the cells actually cover
	radius     float64
	diameter   float64
	cols, rows int
	bottomLeft Vec3
	cells      []Cell // row-major: y*cols + x
	regions    []int  // region label per cell, -1 for blocked cells
	numRegions int
}

// New builds a Grid from DefaultOptions overridden by opts.
// See Build for the validation order and errors.
func New(opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return Build(cfg)
}

// Build validates cfg and allocates columns×rows cells, where
// columns = round(width/diameter) and rows = round(height/diameter).
// Cell (x,y) is centred at bottomLeft + (x·d + r, 0, y·d + r) and is
// walkable iff cfg.Walkable reports so for that centre and radius.
//
// Validation order: ErrBadRadius, ErrBadWorldSize, ErrNilWalkable, ErrEmptyGrid.
//
// Complexity: O(W×H) time and memory, W×H predicate calls.
func Build(cfg Options) (*Grid, error) {
	if !finitePositive(cfg.NodeRadius) {
		return nil, ErrBadRadius
	}
	if !finitePositive(cfg.WorldSize.X) || !finitePositive(cfg.WorldSize.Y) {
		return nil, ErrBadWorldSize
	}
	if cfg.Walkable == nil {
		return nil, ErrNilWalkable
	}

	diameter := cfg.NodeRadius * 2
	cols := int(math.RoundToEven(cfg.WorldSize.X / diameter))
	rows := int(math.RoundToEven(cfg.WorldSize.Y / diameter))
	if cols < 1 || rows < 1 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		origin:   cfg.Origin,
		size:     cfg.WorldSize,
		span:     Vec2{X: float64(cols) * diameter, Y: float64(rows) * diameter},
		radius:   cfg.NodeRadius,
		diameter: diameter,
		cols:     cols,
		rows:     rows,
		bottomLeft: Vec3{
			X: cfg.Origin.X - cfg.WorldSize.X/2,
			Y: cfg.Origin.Y,
			Z: cfg.Origin.Z - cfg.WorldSize.Y/2,
		},
		cells: make([]Cell, cols*rows),
	}

	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			world := g.bottomLeft.Add(Vec3{
				X: float64(x)*diameter + cfg.NodeRadius,
				Z: float64(y)*diameter + cfg.NodeRadius,
			})
			g.cells[g.Index(x, y)] = Cell{
				X:        x,
				Y:        y,
				Walkable: cfg.Walkable(world, cfg.NodeRadius),
				World:    world,
			}
		}
	}
	g.labelRegions()

	return g, nil
}

func finitePositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

// Columns returns the number of cells along world X.
func (g *Grid) Columns() int { return g.cols }

// Rows returns the number of cells along world Z.
func (g *Grid) Rows() int { return g.rows }

// MaxSize returns Columns()*Rows(), the capacity an open set over this grid needs.
func (g *Grid) MaxSize() int { return g.cols * g.rows }

// Radius returns the cell radius.
func (g *Grid) Radius() float64 { return g.radius }

// Diameter returns the cell edge length.
func (g *Grid) Diameter() float64 { return g.diameter }

// Origin returns the world-space centre of the grid.
func (g *Grid) Origin() Vec3 { return g.origin }

// WorldSize returns the declared extent along world X and world Z.
func (g *Grid) WorldSize() Vec2 { return g.size }

// Span returns the extent the cells cover, Columns()·Diameter() by
// Rows()·Diameter(). It differs from WorldSize when the declared size is
// not a multiple of the diameter.
func (g *Grid) Span() Vec2 { return g.span }

// BottomLeft returns the world-space corner with minimal X and Z.
func (g *Grid) BottomLeft() Vec3 { return g.bottomLeft }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Index maps (x,y) to a row-major index y*Columns()+x. It does not check bounds.
func (g *Grid) Index(x, y int) int {
	return y*g.cols + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.cols, idx / g.cols
}

// Cell returns the cell at (x,y) and whether (x,y) is in bounds.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}

	return g.cells[g.Index(x, y)], true
}

// At returns the cell with row-major index idx. It panics if idx is out of range.
func (g *Grid) At(idx int) Cell {
	return g.cells[idx]
}

// Walkable reports whether (x,y) is in bounds and walkable.
func (g *Grid) Walkable(x, y int) bool {
	c, ok := g.Cell(x, y)
	return ok && c.Walkable
}

// Count returns how many cells have the given walkability.
func (g *Grid) Count(walkable bool) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Walkable == walkable {
			n++
		}
	}

	return n
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)

	return out
}

// CellFromWorldPoint maps p to a cell. The position of p along each axis
// is taken as a fraction of Span() measured from BottomLeft(), clamped to
// [0,1], and rounded to the nearest of the Columns() (resp. Rows()) cells.
// Every cell centre maps back to its own cell. Points outside the covered
// area resolve to the nearest edge cell.
//
// Complexity: O(1).
func (g *Grid) CellFromWorldPoint(p Vec3) Cell {
	px := clamp01((p.X - g.bottomLeft.X) / g.span.X)
	pz := clamp01((p.Z - g.bottomLeft.Z) / g.span.Y)

	x := int(math.RoundToEven(float64(g.cols-1) * px))
	y := int(math.RoundToEven(float64(g.rows-1) * pz))

	return g.cells[g.Index(x, y)]
}

// clamp01 limits f to [0,1]; NaN maps to 0.
func clamp01(f float64) float64 {
	switch {
	case f > 1:
		return 1
	case f >= 0:
		return f
	default:
		return 0
	}
}

// Neighbors returns the in-bounds cells of the 3×3 block centred on c,
// excluding c: 8 for interior cells, 5 on edges, 3 in corners.
func (g *Grid) Neighbors(c Cell) []Cell {
	return g.AppendNeighbors(make([]Cell, 0, len(neighborOffsets)), c)
}

// AppendNeighbors appends the neighbors of c to dst and returns the extended
// slice. Search loops reuse dst across calls to avoid allocating.
func (g *Grid) AppendNeighbors(dst []Cell, c Cell) []Cell {
	for _, d := range neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		dst = append(dst, g.cells[g.Index(nx, ny)])
	}

	return dst
}
