package collide

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/katalvlaran/navgrid/spatial"
)

// Layer is a bit set of obstacle categories.
type Layer uint

// LayerAll matches every layer.
const LayerAll = ^Layer(0)

// LayerDefault is the layer of obstacles added without an explicit one.
const LayerDefault Layer = 1

var (
	// ErrBadRadius indicates a circle with a non-positive radius.
	ErrBadRadius = errors.New("collide: radius must be positive")
	// ErrBadBox indicates a box whose max corner is not above its min corner.
	ErrBadBox = errors.New("collide: box max must exceed min on X and Z")
	// ErrNoLayer indicates an obstacle with an empty layer set.
	ErrNoLayer = errors.New("collide: obstacle layer is empty")
)

// World is a set of static obstacles. Add obstacles first, then query;
// queries are not safe to run concurrently with Add calls.
type World struct {
	space  *cp.Space
	shapes int
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{space: cp.NewSpace()}
}

// Len returns the number of obstacles.
func (w *World) Len() int { return w.shapes }

// AddCircle adds a circular obstacle centred on center (X/Z plane).
func (w *World) AddCircle(center spatial.Vec3, radius float64, layer Layer) error {
	if radius <= 0 {
		return fmt.Errorf("%w: %g", ErrBadRadius, radius)
	}
	if layer == 0 {
		return ErrNoLayer
	}
	shape := cp.NewCircle(w.space.StaticBody, radius, planar(center))
	w.add(shape, layer)

	return nil
}

// AddBox adds an axis-aligned box obstacle spanning lo..hi on X and Z.
func (w *World) AddBox(lo, hi spatial.Vec3, layer Layer) error {
	if hi.X <= lo.X || hi.Z <= lo.Z {
		return fmt.Errorf("%w: %v..%v", ErrBadBox, lo, hi)
	}
	if layer == 0 {
		return ErrNoLayer
	}
	bb := cp.BB{L: lo.X, B: lo.Z, R: hi.X, T: hi.Z}
	w.add(cp.NewBox2(w.space.StaticBody, bb, 0), layer)

	return nil
}

func (w *World) add(shape *cp.Shape, layer Layer) {
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES))
	w.space.AddShape(shape)
	w.shapes++
}

// Overlaps reports whether a sphere of the given radius at p touches any
// obstacle on a layer in mask.
func (w *World) Overlaps(p spatial.Vec3, radius float64, mask Layer) bool {
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
	info := w.space.PointQueryNearest(planar(p), radius, filter)

	return info.Shape != nil
}

// Walkable returns a predicate that accepts a sphere iff it overlaps no
// obstacle on a layer in mask.
func (w *World) Walkable(mask Layer) spatial.WalkableFunc {
	return func(p spatial.Vec3, radius float64) bool {
		return !w.Overlaps(p, radius, mask)
	}
}

func planar(p spatial.Vec3) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Z}
}
