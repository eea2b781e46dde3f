package spatial

import "errors"

var (
	// ErrBadRadius indicates a node radius that is zero, negative, NaN or infinite.
	ErrBadRadius = errors.New("spatial: node radius must be positive and finite")
	// ErrBadWorldSize indicates a world size axis that is zero, negative, NaN or infinite.
	ErrBadWorldSize = errors.New("spatial: world size must be positive and finite on both axes")
	// ErrNilWalkable indicates the grid was built without a walkability predicate.
	ErrNilWalkable = errors.New("spatial: walkable predicate is nil")
	// ErrEmptyGrid indicates the world is smaller than half a cell on some axis.
	ErrEmptyGrid = errors.New("spatial: grid must have at least one column and one row")
)

// ErrNonRectangular indicates FromRows was given rows of differing lengths.
var ErrNonRectangular = errors.New("spatial: all rows must have the same length")
