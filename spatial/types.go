// Package spatial defines the value types, options and predicate contract
// for the spatial subpackage of github.com/katalvlaran/navgrid.
package spatial

import "fmt"

// Vec3 is a point in world space. The grid lies in the X/Z plane.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// String formats v as "(x, y, z)".
func (v Vec3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }

// Vec2 is an extent on the grid plane: X along world X, Y along world Z.
type Vec2 struct {
	X, Y float64
}

// WalkableFunc reports whether a sphere of the given radius centred on p
// is free of obstacles. It is called exactly once per cell by New.
type WalkableFunc func(p Vec3, radius float64) bool

// Cell is one grid position. Cells are created by New and never change.
type Cell struct {
	X, Y     int  // Column and row within the grid
	Walkable bool // Fixed at build time
	World    Vec3 // Centre of the cell in world space
}

// Pos returns the (column, row) pair of c.
func (c Cell) Pos() [2]int { return [2]int{c.X, c.Y} }

// String formats c as "(x,y)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Options configures grid construction.
type Options struct {
	// Origin is the world-space centre of the covered rectangle.
	Origin Vec3
	// WorldSize is the covered extent along world X and world Z.
	WorldSize Vec2
	// NodeRadius is half the edge length of a cell.
	NodeRadius float64
	// Walkable classifies each cell centre.
	Walkable WalkableFunc
}

// Option mutates Options before the grid is built.
type Option func(*Options)

// WithOrigin sets the world-space centre of the grid.
func WithOrigin(origin Vec3) Option {
	return func(o *Options) { o.Origin = origin }
}

// WithWorldSize sets the covered extent along world X (width) and world Z (height).
func WithWorldSize(width, height float64) Option {
	return func(o *Options) { o.WorldSize = Vec2{X: width, Y: height} }
}

// WithNodeRadius sets the cell radius; the cell diameter is twice this value.
func WithNodeRadius(radius float64) Option {
	return func(o *Options) { o.NodeRadius = radius }
}

// WithWalkable sets the walkability predicate.
func WithWalkable(fn WalkableFunc) Option {
	return func(o *Options) { o.Walkable = fn }
}

// AllWalkable is a WalkableFunc that accepts every point.
func AllWalkable(Vec3, float64) bool { return true }

// DefaultOptions returns a 10×10 world centred on the origin with 0.5 radius
// cells (a 10×10 grid) and every cell walkable.
func DefaultOptions() Options {
	return Options{
		WorldSize:  Vec2{X: 10, Y: 10},
		NodeRadius: 0.5,
		Walkable:   AllWalkable,
	}
}
