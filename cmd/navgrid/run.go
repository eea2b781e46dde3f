package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/navgrid/astar"
	"github.com/katalvlaran/navgrid/level"
	"github.com/katalvlaran/navgrid/render"
	"github.com/katalvlaran/navgrid/spatial"
)

// errBadPoint indicates an endpoint that is neither a waypoint nor "x,z".
var errBadPoint = errors.New("endpoint must be a waypoint name or x,z")

type config struct {
	level         string
	from, to      string
	plain         bool
	width         int
	maxExpansions int
	timeout       time.Duration
	verbose       bool
	logger        *log.Logger
}

// run performs one load-search-render cycle, writing the map and a summary
// to out. A search that finds no route still draws the map and then
// returns astar.ErrNoPath.
func run(ctx context.Context, cfg config, out io.Writer) error {
	lv, err := level.Load(cfg.level)
	if err != nil {
		return err
	}
	g, err := lv.Grid()
	if err != nil {
		return fmt.Errorf("level %s: %w", lv.Name, err)
	}
	from, err := resolvePoint(lv, cfg.from)
	if err != nil {
		return err
	}
	to, err := resolvePoint(lv, cfg.to)
	if err != nil {
		return err
	}

	opts := []astar.Option{astar.WithLogger(cfg.logger)}
	if cfg.maxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(cfg.maxExpansions))
	}
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	res, searchErr := astar.FindPath(ctx, g, from, to, opts...)
	if searchErr != nil && !errors.Is(searchErr, astar.ErrNoPath) {
		return searchErr
	}

	width := cfg.width
	if width == 0 && !cfg.plain {
		width = render.TerminalWidth()
	}
	r := render.Renderer{Out: out, Plain: cfg.plain, MaxWidth: width}
	if err := r.Render(g, res.Path, render.Start(res.Start), render.Target(res.Target)); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %v -> %v (%dx%d cells, %d blocked)\n",
		lv.Name, res.Start, res.Target, g.Columns(), g.Rows(), g.Count(false))
	if searchErr != nil {
		fmt.Fprintf(out, "no path, expanded %d\n", res.Expanded)
		return searchErr
	}
	fmt.Fprintf(out, "cost %d, %d steps, expanded %d\n", res.Cost, len(res.Path), res.Expanded)

	return nil
}

// resolvePoint turns a waypoint name or an "x,z" pair into a world point.
func resolvePoint(lv *level.Level, s string) (spatial.Vec3, error) {
	if p, err := lv.Waypoint(s); err == nil {
		return p, nil
	}
	xs, zs, ok := strings.Cut(s, ",")
	if !ok {
		return spatial.Vec3{}, fmt.Errorf("%w: %q (waypoints: %s)",
			errBadPoint, s, strings.Join(lv.WaypointNames(), ", "))
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	z, errZ := strconv.ParseFloat(strings.TrimSpace(zs), 64)
	if errX != nil || errZ != nil {
		return spatial.Vec3{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}

	return spatial.Vec3{X: x, Z: z}, nil
}
