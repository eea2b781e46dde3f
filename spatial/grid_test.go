package spatial_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgrid/spatial"
)

//----------------------------------------------------------------------------//
// Build / New
//----------------------------------------------------------------------------//

// TestBuild_Errors verifies the validation ladder of Build.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []spatial.Option
		err  error
	}{
		{"ZeroRadius", []spatial.Option{spatial.WithNodeRadius(0)}, spatial.ErrBadRadius},
		{"NegativeRadius", []spatial.Option{spatial.WithNodeRadius(-1)}, spatial.ErrBadRadius},
		{"NaNRadius", []spatial.Option{spatial.WithNodeRadius(math.NaN())}, spatial.ErrBadRadius},
		{"InfRadius", []spatial.Option{spatial.WithNodeRadius(math.Inf(1))}, spatial.ErrBadRadius},
		{"ZeroWidth", []spatial.Option{spatial.WithWorldSize(0, 10)}, spatial.ErrBadWorldSize},
		{"NegativeHeight", []spatial.Option{spatial.WithWorldSize(10, -3)}, spatial.ErrBadWorldSize},
		{"NilWalkable", []spatial.Option{spatial.WithWalkable(nil)}, spatial.ErrNilWalkable},
		{"TooSmall", []spatial.Option{spatial.WithWorldSize(0.4, 10)}, spatial.ErrEmptyGrid},
		// radius is checked before the world size
		{"RadiusFirst", []spatial.Option{spatial.WithNodeRadius(0), spatial.WithWorldSize(0, 0)}, spatial.ErrBadRadius},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := spatial.New(tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New() error = %v; want %v", err, tc.err)
			}
			if g != nil {
				t.Errorf("New() grid = %v; want nil on error", g)
			}
		})
	}
}

// TestBuild_Dimensions checks columns = round(width/d) and rows = round(height/d).
func TestBuild_Dimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height float64
		radius        float64
		cols, rows    int
	}{
		{"Exact", 30, 20, 0.5, 30, 20},
		{"RoundUp", 10, 10, 0.3, 17, 17},
		{"RoundDown", 10.2, 4.1, 1, 5, 2},
		{"Single", 1, 1, 0.5, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := spatial.New(
				spatial.WithWorldSize(tc.width, tc.height),
				spatial.WithNodeRadius(tc.radius),
			)
			require.NoError(t, err)
			assert.Equal(t, tc.cols, g.Columns())
			assert.Equal(t, tc.rows, g.Rows())
			assert.Equal(t, tc.cols*tc.rows, g.MaxSize())
			assert.Len(t, g.Cells(), tc.cols*tc.rows)
		})
	}
}

// TestBuild_CellCentres verifies world positions are bottomLeft + (x·d+r, 0, y·d+r).
func TestBuild_CellCentres(t *testing.T) {
	g, err := spatial.New(
		spatial.WithOrigin(spatial.Vec3{X: 2, Y: 1, Z: -3}),
		spatial.WithWorldSize(4, 2),
		spatial.WithNodeRadius(0.5),
	)
	require.NoError(t, err)
	require.Equal(t, 4, g.Columns())
	require.Equal(t, 2, g.Rows())
	assert.Equal(t, spatial.Vec3{X: 0, Y: 1, Z: -4}, g.BottomLeft())

	c, ok := g.Cell(0, 0)
	require.True(t, ok)
	assert.Equal(t, spatial.Vec3{X: 0.5, Y: 1, Z: -3.5}, c.World)

	c, ok = g.Cell(3, 1)
	require.True(t, ok)
	assert.Equal(t, spatial.Vec3{X: 3.5, Y: 1, Z: -2.5}, c.World)
	assert.Equal(t, 3, c.X)
	assert.Equal(t, 1, c.Y)
}

// TestBuild_PredicateCalls verifies the predicate runs once per cell with the node radius.
func TestBuild_PredicateCalls(t *testing.T) {
	calls := 0
	g, err := spatial.New(
		spatial.WithWorldSize(6, 4),
		spatial.WithNodeRadius(1),
		spatial.WithWalkable(func(p spatial.Vec3, r float64) bool {
			calls++
			assert.Equal(t, 1.0, r)
			return p.X < 0 // left half walkable
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, g.MaxSize(), calls)
	// centres at X = -2, 0, 2: only the first column is walkable
	assert.Equal(t, 2, g.Count(true))
	assert.Equal(t, 4, g.Count(false))
	assert.True(t, g.Walkable(0, 0))
	assert.False(t, g.Walkable(2, 1))
	assert.False(t, g.Walkable(-1, 0), "out of bounds is not walkable")
}

// TestIndexCoordinate checks the row-major index round trip.
func TestIndexCoordinate(t *testing.T) {
	g, err := spatial.New(spatial.WithWorldSize(7, 3), spatial.WithNodeRadius(0.5))
	require.NoError(t, err)

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Columns(); x++ {
			idx := g.Index(x, y)
			gx, gy := g.Coordinate(idx)
			require.Equal(t, [2]int{x, y}, [2]int{gx, gy})
			require.Equal(t, [2]int{x, y}, g.At(idx).Pos())
		}
	}
	_, ok := g.Cell(7, 0)
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// CellFromWorldPoint
//----------------------------------------------------------------------------//

// TestCellFromWorldPoint_RoundTrip verifies every cell centre maps back to its own cell.
func TestCellFromWorldPoint_RoundTrip(t *testing.T) {
	cases := []struct {
		name          string
		origin        spatial.Vec3
		width, height float64
		radius        float64
	}{
		{"Unit5x5", spatial.Vec3{}, 5, 5, 0.5},
		{"Offset30x30", spatial.Vec3{X: 100, Y: 4, Z: -40}, 30, 30, 0.5},
		{"Wide7x3", spatial.Vec3{X: -2}, 21, 9, 1.5},
		{"Tall2x9", spatial.Vec3{Z: 7}, 0.5, 2.25, 0.125},
		// declared size is not a multiple of the diameter
		{"Rounded9x9", spatial.Vec3{}, 9, 9, 1},
		{"RoundedUp11x7", spatial.Vec3{X: 3, Z: -3}, 11, 7, 1},
		{"RoundedDown10x10", spatial.Vec3{}, 10.4, 9.6, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := spatial.New(
				spatial.WithOrigin(tc.origin),
				spatial.WithWorldSize(tc.width, tc.height),
				spatial.WithNodeRadius(tc.radius),
			)
			require.NoError(t, err)
			for _, c := range g.Cells() {
				got := g.CellFromWorldPoint(c.World)
				require.Equal(t, c.Pos(), got.Pos(), "centre %v", c.World)
			}
		})
	}
}

// TestCellFromWorldPoint_RoundedSize pins the mapping of a 9×9 world sampled
// by 2-unit cells: 4×4 cells covering 8×8 units from the declared bottom-left.
func TestCellFromWorldPoint_RoundedSize(t *testing.T) {
	g, err := spatial.New(spatial.WithWorldSize(9, 9), spatial.WithNodeRadius(1))
	require.NoError(t, err)
	require.Equal(t, 4, g.Columns())
	require.Equal(t, 4, g.Rows())
	assert.Equal(t, spatial.Vec2{X: 9, Y: 9}, g.WorldSize())
	assert.Equal(t, spatial.Vec2{X: 8, Y: 8}, g.Span())

	for _, pos := range [][2]int{{3, 0}, {0, 3}, {3, 3}, {2, 1}} {
		c, ok := g.Cell(pos[0], pos[1])
		require.True(t, ok)
		assert.Equal(t, pos, g.CellFromWorldPoint(c.World).Pos(), "centre %v", c.World)
	}
	// the strip between the last cell and the declared edge clamps to the edge cell
	assert.Equal(t, [2]int{3, 3}, g.CellFromWorldPoint(spatial.Vec3{X: 4.4, Z: 4.4}).Pos())
}

// TestCellFromWorldPoint_Clamps verifies far-away points resolve to edge cells.
func TestCellFromWorldPoint_Clamps(t *testing.T) {
	g, err := spatial.New(spatial.WithWorldSize(5, 4), spatial.WithNodeRadius(0.5))
	require.NoError(t, err)

	cases := []struct {
		name string
		p    spatial.Vec3
		want [2]int
	}{
		{"FarBottomLeft", spatial.Vec3{X: -1e9, Z: -1e9}, [2]int{0, 0}},
		{"FarTopRight", spatial.Vec3{X: 1e9, Z: 1e9}, [2]int{4, 3}},
		{"FarRight", spatial.Vec3{X: 1e9, Z: -1e9}, [2]int{4, 0}},
		{"InfLeft", spatial.Vec3{X: math.Inf(-1), Z: 0.6}, [2]int{0, 2}},
		{"NaN", spatial.Vec3{X: math.NaN(), Z: math.NaN()}, [2]int{0, 0}},
		{"HeightIgnored", spatial.Vec3{X: 0, Y: 1e9, Z: -2}, [2]int{2, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.CellFromWorldPoint(tc.p)
			assert.Equal(t, tc.want, got.Pos())
			assert.True(t, g.InBounds(got.X, got.Y))
		})
	}
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestNeighbors_Counts checks 8/5/3 neighbors for interior/edge/corner cells.
func TestNeighbors_Counts(t *testing.T) {
	g, err := spatial.New(spatial.WithWorldSize(5, 5), spatial.WithNodeRadius(0.5))
	require.NoError(t, err)

	cases := []struct {
		x, y int
		want int
	}{
		{2, 2, 8}, {1, 3, 8},
		{0, 0, 3}, {4, 0, 3}, {0, 4, 3}, {4, 4, 3},
		{0, 2, 5}, {4, 1, 5}, {2, 0, 5}, {3, 4, 5},
	}
	for _, tc := range cases {
		c, ok := g.Cell(tc.x, tc.y)
		require.True(t, ok)
		ns := g.Neighbors(c)
		assert.Len(t, ns, tc.want, "cell (%d,%d)", tc.x, tc.y)
		for _, n := range ns {
			assert.NotEqual(t, c.Pos(), n.Pos())
			assert.LessOrEqual(t, abs(n.X-c.X), 1)
			assert.LessOrEqual(t, abs(n.Y-c.Y), 1)
		}
	}
}

// TestNeighbors_Degenerate covers single-row and single-cell grids.
func TestNeighbors_Degenerate(t *testing.T) {
	one, err := spatial.New(spatial.WithWorldSize(1, 1), spatial.WithNodeRadius(0.5))
	require.NoError(t, err)
	assert.Empty(t, one.Neighbors(one.At(0)))

	row, err := spatial.New(spatial.WithWorldSize(3, 1), spatial.WithNodeRadius(0.5))
	require.NoError(t, err)
	mid, _ := row.Cell(1, 0)
	assert.Len(t, row.Neighbors(mid), 2)
}

// TestNeighbors_Order pins the enumeration order so tie-breaking downstream is reproducible.
func TestNeighbors_Order(t *testing.T) {
	g, err := spatial.New(spatial.WithWorldSize(3, 3), spatial.WithNodeRadius(0.5))
	require.NoError(t, err)
	c, _ := g.Cell(1, 1)

	var got [][2]int
	for _, n := range g.Neighbors(c) {
		got = append(got, n.Pos())
	}
	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	assert.Equal(t, want, got)

	// AppendNeighbors keeps the prefix and reuses capacity.
	buf := make([]spatial.Cell, 1, 16)
	buf = g.AppendNeighbors(buf, g.At(0))
	assert.Len(t, buf, 4)
	assert.Equal(t, 16, cap(buf))
}

//----------------------------------------------------------------------------//
// FromRows
//----------------------------------------------------------------------------//

// TestFromRows_Layout verifies the first row is the top of the world.
func TestFromRows_Layout(t *testing.T) {
	g, err := spatial.FromRows(0.5,
		"#..",
		"..#",
	)
	require.NoError(t, err)
	require.Equal(t, 3, g.Columns())
	require.Equal(t, 2, g.Rows())

	assert.False(t, g.Walkable(0, 1), "top-left")
	assert.True(t, g.Walkable(0, 0), "bottom-left")
	assert.False(t, g.Walkable(2, 0), "bottom-right")
	assert.True(t, g.Walkable(2, 1), "top-right")
	assert.Equal(t, spatial.Vec3{X: -1.5, Z: -1}, g.BottomLeft())
}

// TestFromRows_Errors rejects empty and ragged layouts.
func TestFromRows_Errors(t *testing.T) {
	_, err := spatial.FromRows(0.5)
	assert.ErrorIs(t, err, spatial.ErrEmptyGrid)
	_, err = spatial.FromRows(0.5, "")
	assert.ErrorIs(t, err, spatial.ErrEmptyGrid)
	_, err = spatial.FromRows(0.5, "..", ".")
	assert.ErrorIs(t, err, spatial.ErrNonRectangular)
	_, err = spatial.FromRows(0, "..")
	assert.ErrorIs(t, err, spatial.ErrBadRadius)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
