package spatial

import "math"

// Blocked is the glyph FromRows treats as an unwalkable cell.
const Blocked = '#'

// FromRows builds a grid centred on the world origin from a text layout.
// rows[0] is the top row (largest Z, y = len(rows)-1); within a row the
// first byte is column 0. Blocked marks an unwalkable cell, any other byte
// a walkable one.
//
// Returns ErrEmptyGrid for no rows or an empty first row, ErrNonRectangular
// for ragged rows, and the Build errors for a bad radius.
func FromRows(radius float64, rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, r := range rows {
		if len(r) != w {
			return nil, ErrNonRectangular
		}
	}
	if !finitePositive(radius) {
		return nil, ErrBadRadius
	}

	h := len(rows)
	d := radius * 2
	width, height := float64(w)*d, float64(h)*d
	walkable := func(p Vec3, _ float64) bool {
		x := int(math.Floor((p.X + width/2) / d))
		y := int(math.Floor((p.Z + height/2) / d))
		if x < 0 || x >= w || y < 0 || y >= h {
			return false
		}
		return rows[h-1-y][x] != Blocked
	}

	return Build(Options{
		WorldSize:  Vec2{X: width, Y: height},
		NodeRadius: radius,
		Walkable:   walkable,
	})
}
