package astar

import (
	"context"

	"github.com/katalvlaran/navgrid/spatial"
)

// Pathfinder binds a grid and search options. It holds no search state and
// is safe for concurrent use.
type Pathfinder struct {
	grid *spatial.Grid
	opts []Option
}

// NewPathfinder returns a Pathfinder searching g with opts applied to every query.
func NewPathfinder(g *spatial.Grid, opts ...Option) *Pathfinder {
	return &Pathfinder{grid: g, opts: opts}
}

// Grid returns the searched grid.
func (p *Pathfinder) Grid() *spatial.Grid { return p.grid }

// FindPath searches between two world points. extra options are applied
// after the Pathfinder's own.
func (p *Pathfinder) FindPath(ctx context.Context, start, target spatial.Vec3, extra ...Option) (Result, error) {
	return FindPath(ctx, p.grid, start, target, append(p.opts[:len(p.opts):len(p.opts)], extra...)...)
}

// Search searches between two cells of the bound grid.
func (p *Pathfinder) Search(ctx context.Context, start, target spatial.Cell, extra ...Option) (Result, error) {
	return Search(ctx, p.grid, start, target, append(p.opts[:len(p.opts):len(p.opts)], extra...)...)
}
