package astar

import (
	"context"
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/navgrid/pqueue"
	"github.com/katalvlaran/navgrid/spatial"
)

// FindPath resolves the world points start and target to grid cells with
// CellFromWorldPoint and searches between them. Points outside the grid are
// clamped to the nearest edge cell.
//
// Returns ErrNilGrid, ErrNoPath, ErrExpansionLimit or ctx.Err(); see Search.
func FindPath(ctx context.Context, g *spatial.Grid, start, target spatial.Vec3, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}

	return Search(ctx, g, g.CellFromWorldPoint(start), g.CellFromWorldPoint(target), opts...)
}

// Search runs A* from start to target. Only the X/Y coordinates of the
// given cells are used; walkability is always read from g.
//
// The start cell is expanded even if it is blocked; every other cell on the
// path, the target included, is walkable. A start equal to the target yields
// a found, empty path.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and target must lie inside g (ErrCellOutOfBounds).
//
// Outcomes other than success: ErrNoPath, ErrExpansionLimit, ctx.Err().
// The returned Result always carries the resolved endpoints and the number
// of expanded cells.
func Search(ctx context.Context, g *spatial.Grid, start, target spatial.Cell, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	s, ok := g.Cell(start.X, start.Y)
	if !ok {
		return Result{}, fmt.Errorf("%w: start %v", ErrCellOutOfBounds, start)
	}
	t, ok := g.Cell(target.X, target.Y)
	if !ok {
		return Result{}, fmt.Errorf("%w: target %v", ErrCellOutOfBounds, target)
	}

	r := &runner{
		g:      g,
		opts:   cfg,
		start:  s,
		target: t,
	}
	began := time.Now()
	res, err := r.run(ctx)
	r.report(res, err, time.Since(began))

	return res, err
}

// runner holds the mutable state of a single search.
type runner struct {
	g      *spatial.Grid
	opts   Options
	start  spatial.Cell
	target spatial.Cell

	nodes  []node              // state table indexed by row-major cell index
	open   *pqueue.Heap[*node] // frontier ordered by (fCost, hCost)
	closed mapset.Set[int]     // expanded cell indices
}

// unreachable reports whether the target provably cannot be reached, using
// the grid's region labels. A blocked start is expanded anyway, so regions
// decide nothing for it unless the target itself is blocked.
func (r *runner) unreachable() bool {
	if r.start.Pos() == r.target.Pos() {
		return false
	}
	if !r.target.Walkable {
		return true
	}

	return r.start.Walkable && !r.g.Connected(r.start, r.target)
}

// run executes the search loop.
func (r *runner) run(ctx context.Context) (Result, error) {
	res := Result{Start: r.start, Target: r.target}
	if r.opts.RegionCheck && r.unreachable() {
		return res, ErrNoPath
	}

	r.nodes = make([]node, r.g.MaxSize())
	r.open = pqueue.New[*node](r.g.MaxSize())
	r.closed = mapset.New[int]()

	startIdx := r.g.Index(r.start.X, r.start.Y)
	targetIdx := r.g.Index(r.target.X, r.target.Y)

	first := &r.nodes[startIdx]
	*first = node{
		x:      r.start.X,
		y:      r.start.Y,
		hCost:  CellDistance(r.start, r.target),
		parent: -1,
	}
	r.open.Push(first)

	neighbors := make([]spatial.Cell, 0, 8)
	for r.open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		// 1) Pop the most promising cell and close it.
		cur := r.open.Pop()
		curIdx := r.g.Index(cur.x, cur.y)
		r.closed.Put(curIdx)
		res.Expanded++

		// 2) Target reached.
		if curIdx == targetIdx {
			res.Path = r.retrace(startIdx, targetIdx)
			res.Cost = cur.gCost
			res.Found = true
			return res, nil
		}
		if r.opts.MaxExpansions > 0 && res.Expanded >= r.opts.MaxExpansions {
			return res, ErrExpansionLimit
		}

		// 3) Relax every walkable, unexpanded neighbor.
		neighbors = r.g.AppendNeighbors(neighbors[:0], r.g.At(curIdx))
		for _, nc := range neighbors {
			ni := r.g.Index(nc.X, nc.Y)
			if !nc.Walkable || r.closed.Has(ni) {
				continue
			}
			n := &r.nodes[ni]
			tentative := cur.gCost + Distance(cur.x, cur.y, nc.X, nc.Y)
			inOpen := r.open.Contains(n)
			if inOpen && tentative >= n.gCost {
				continue
			}

			n.x, n.y = nc.X, nc.Y
			n.gCost = tentative
			n.hCost = CellDistance(nc, r.target)
			n.parent = curIdx
			if inOpen {
				// key only decreased: sift up in place
				r.open.Update(n)
			} else {
				r.open.Push(n)
			}
		}
	}

	return res, ErrNoPath
}

// retrace follows predecessor links from the target back to the start
// (exclusive) and returns the cells in walking order.
func (r *runner) retrace(startIdx, targetIdx int) []spatial.Cell {
	var path []spatial.Cell
	for at := targetIdx; at != startIdx; at = r.nodes[at].parent {
		path = append(path, r.g.At(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// report writes the summary line when a logger is configured.
func (r *runner) report(res Result, err error, took time.Duration) {
	if r.opts.Logger == nil {
		return
	}
	if err != nil {
		r.opts.Logger.Printf("astar: %v -> %v: %v after %d expansions in %s",
			r.start, r.target, err, res.Expanded, took)
		return
	}
	r.opts.Logger.Printf("astar: %v -> %v: path found: %d cells, cost %d, expanded %d in %s",
		r.start, r.target, len(res.Path), res.Cost, res.Expanded, took)
}
