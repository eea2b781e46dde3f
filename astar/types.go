package astar

import (
	"errors"
	"log"

	"github.com/katalvlaran/navgrid/spatial"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates a nil *spatial.Grid was passed in.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrCellOutOfBounds indicates a start or target cell outside the grid.
	ErrCellOutOfBounds = errors.New("astar: cell outside the grid")

	// ErrNoPath indicates the open set emptied without reaching the target.
	// It is an expected outcome, not a failure of the search.
	ErrNoPath = errors.New("astar: no path between start and target")

	// ErrExpansionLimit indicates the search stopped after MaxExpansions expansions.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrBadMaxExpansions indicates a non-positive expansion limit.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be positive")
)

// Movement weights of the octile cost model.
const (
	StraightCost = 10
	DiagonalCost = 14
)

// Options configures a search.
//
// Logger        – if non-nil, receives one summary line per search.
// MaxExpansions – stop with ErrExpansionLimit after this many expansions; 0 means no limit.
// RegionCheck   – reject queries whose endpoints lie in different walkable
// regions of the grid before expanding anything.
type Options struct {
	Logger        *log.Logger
	MaxExpansions int
	RegionCheck   bool
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithLogger enables a per-search summary line on l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxExpansions bounds the number of cells a search may expand.
// It panics with ErrBadMaxExpansions if n is not positive.
func WithMaxExpansions(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxExpansions.Error())
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithRegionCheck toggles the region pre-check (enabled by default).
func WithRegionCheck(enabled bool) Option {
	return func(o *Options) {
		o.RegionCheck = enabled
	}
}

// DefaultOptions returns the defaults: no logger, no expansion limit,
// region pre-check enabled.
func DefaultOptions() Options {
	return Options{
		RegionCheck: true,
	}
}

// Result is the outcome of a search.
type Result struct {
	Start    spatial.Cell   // Resolved start cell
	Target   spatial.Cell   // Resolved target cell
	Path     []spatial.Cell // Start (exclusive) to target (inclusive); nil unless Found
	Cost     int            // Movement cost of Path under the octile model
	Expanded int            // Cells popped from the open set
	Found    bool           // Whether Path reaches Target
}

// Waypoints returns the world-space centres of the cells in Path.
func (r Result) Waypoints() []spatial.Vec3 {
	if len(r.Path) == 0 {
		return nil
	}
	out := make([]spatial.Vec3, len(r.Path))
	for i, c := range r.Path {
		out[i] = c.World
	}

	return out
}

// Cells returns Path with Start prepended, for callers that need both endpoints.
func (r Result) Cells() []spatial.Cell {
	if !r.Found {
		return nil
	}
	out := make([]spatial.Cell, 0, len(r.Path)+1)
	out = append(out, r.Start)

	return append(out, r.Path...)
}
