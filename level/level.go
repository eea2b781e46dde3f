package level

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/navgrid/collide"
	"github.com/katalvlaran/navgrid/spatial"
)

// DefaultNodeRadius is used when a level leaves node_radius unset.
const DefaultNodeRadius = 0.5

// MaxLayers is the number of distinct layer names a level may declare.
const MaxLayers = 32

// Obstacle shapes.
const (
	ShapeCircle = "circle"
	ShapeBox    = "box"
)

var (
	// ErrEmpty indicates a document with no level in it.
	ErrEmpty = errors.New("level: empty document")
	// ErrBadSize indicates a non-positive world extent.
	ErrBadSize = errors.New("level: size must be positive")
	// ErrBadRadius indicates a negative node radius.
	ErrBadRadius = errors.New("level: node_radius must not be negative")
	// ErrBadShape indicates an obstacle with an unknown shape.
	ErrBadShape = errors.New("level: unknown obstacle shape")
	// ErrUnknownLayer indicates a reference to an undeclared layer.
	ErrUnknownLayer = errors.New("level: unknown layer")
	// ErrDuplicateLayer indicates a layer declared twice.
	ErrDuplicateLayer = errors.New("level: duplicate layer")
	// ErrTooManyLayers indicates more than MaxLayers layers.
	ErrTooManyLayers = errors.New("level: too many layers")
	// ErrUnknownWaypoint indicates a lookup of an undeclared waypoint.
	ErrUnknownWaypoint = errors.New("level: unknown waypoint")
)

// Point is a world position. Y is carried through but ignored by the grid.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec3 converts p to a spatial vector.
func (p Point) Vec3() spatial.Vec3 { return spatial.Vec3{X: p.X, Y: p.Y, Z: p.Z} }

// Extent is the size of the level along world X (width) and Z (depth).
type Extent struct {
	Width float64 `yaml:"width"`
	Depth float64 `yaml:"depth"`
}

// Obstacle is one static blocker. Circles use Center and Radius, boxes use
// Min and Max.
type Obstacle struct {
	Shape  string  `yaml:"shape"`
	Layer  string  `yaml:"layer,omitempty"`
	Center Point   `yaml:"center,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
	Min    Point   `yaml:"min,omitempty"`
	Max    Point   `yaml:"max,omitempty"`
}

// Level is the decoded form of a level file.
type Level struct {
	Name       string           `yaml:"name"`
	Origin     Point            `yaml:"origin"`
	Size       Extent           `yaml:"size"`
	NodeRadius float64          `yaml:"node_radius,omitempty"`
	Layers     []string         `yaml:"layers,omitempty"`
	Unwalkable []string         `yaml:"unwalkable,omitempty"`
	Obstacles  []Obstacle       `yaml:"obstacles,omitempty"`
	Waypoints  map[string]Point `yaml:"waypoints,omitempty"`
}

// Parse decodes and validates a level. Unknown keys are rejected.
func Parse(data []byte) (*Level, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var lv Level
	if err := dec.Decode(&lv); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	if err := lv.Validate(); err != nil {
		return nil, err
	}

	return &lv, nil
}

// Load reads and parses the level file at path.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", path, err)
	}
	lv, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: unmarshal %s: %w", path, err)
	}
	if lv.Name == "" {
		lv.Name = path
	}

	return lv, nil
}

// Validate checks sizes, shapes and layer references.
func (lv *Level) Validate() error {
	if !(lv.Size.Width > 0) || !(lv.Size.Depth > 0) {
		return fmt.Errorf("%w: %gx%g", ErrBadSize, lv.Size.Width, lv.Size.Depth)
	}
	if lv.NodeRadius < 0 {
		return fmt.Errorf("%w: %g", ErrBadRadius, lv.NodeRadius)
	}
	if len(lv.Layers) > MaxLayers {
		return fmt.Errorf("%w: %d > %d", ErrTooManyLayers, len(lv.Layers), MaxLayers)
	}
	seen := make(map[string]struct{}, len(lv.Layers))
	for _, name := range lv.Layers {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLayer, name)
		}
		seen[name] = struct{}{}
	}
	for _, name := range lv.Unwalkable {
		if _, err := lv.layer(name); err != nil {
			return err
		}
	}
	for i, o := range lv.Obstacles {
		if _, err := lv.layer(o.Layer); err != nil {
			return fmt.Errorf("obstacle %d: %w", i, err)
		}
		switch o.Shape {
		case ShapeCircle, ShapeBox:
		default:
			return fmt.Errorf("obstacle %d: %w: %q", i, ErrBadShape, o.Shape)
		}
	}

	return nil
}

// layer maps a layer name to its bit. The empty name is the first layer.
func (lv *Level) layer(name string) (collide.Layer, error) {
	if name == "" {
		return collide.LayerDefault, nil
	}
	for i, n := range lv.Layers {
		if n == name {
			return collide.Layer(1) << uint(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

// Mask returns the layers that block movement.
func (lv *Level) Mask() (collide.Layer, error) {
	if len(lv.Unwalkable) == 0 {
		return collide.LayerAll, nil
	}
	var mask collide.Layer
	for _, name := range lv.Unwalkable {
		bit, err := lv.layer(name)
		if err != nil {
			return 0, err
		}
		mask |= bit
	}

	return mask, nil
}

// Radius returns the node radius, defaulted.
func (lv *Level) Radius() float64 {
	if lv.NodeRadius == 0 {
		return DefaultNodeRadius
	}
	return lv.NodeRadius
}

// World builds the obstacle world.
func (lv *Level) World() (*collide.World, error) {
	w := collide.NewWorld()
	for i, o := range lv.Obstacles {
		bit, err := lv.layer(o.Layer)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		switch o.Shape {
		case ShapeCircle:
			err = w.AddCircle(o.Center.Vec3(), o.Radius, bit)
		case ShapeBox:
			err = w.AddBox(o.Min.Vec3(), o.Max.Vec3(), bit)
		default:
			err = fmt.Errorf("%w: %q", ErrBadShape, o.Shape)
		}
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
	}

	return w, nil
}

// Grid builds the obstacle world and samples it into a grid.
func (lv *Level) Grid() (*spatial.Grid, error) {
	w, err := lv.World()
	if err != nil {
		return nil, err
	}
	mask, err := lv.Mask()
	if err != nil {
		return nil, err
	}

	return spatial.New(
		spatial.WithOrigin(lv.Origin.Vec3()),
		spatial.WithWorldSize(lv.Size.Width, lv.Size.Depth),
		spatial.WithNodeRadius(lv.Radius()),
		spatial.WithWalkable(w.Walkable(mask)),
	)
}

// Waypoint returns the position of a named waypoint.
func (lv *Level) Waypoint(name string) (spatial.Vec3, error) {
	p, ok := lv.Waypoints[name]
	if !ok {
		return spatial.Vec3{}, fmt.Errorf("%w: %q", ErrUnknownWaypoint, name)
	}
	return p.Vec3(), nil
}

// WaypointNames returns the waypoint names in sorted order.
func (lv *Level) WaypointNames() []string {
	names := make([]string, 0, len(lv.Waypoints))
	for name := range lv.Waypoints {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
