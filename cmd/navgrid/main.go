// Command navgrid loads a level, finds a path between two points and
// prints the grid with the path drawn on it.
//
//	navgrid -level courtyard.yaml -from gate -to well
//	navgrid -level courtyard.yaml -from -8.5,-8.5 -to 7,3 -plain
//	navgrid -level courtyard.yaml -from gate -to well -watch
//
// Endpoints are waypoint names from the level or "x,z" world coordinates.
// With -watch the search is repeated every time the level file changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/navgrid/astar"
	"github.com/katalvlaran/navgrid/level"
)

func main() {
	var cfg config
	flag.StringVar(&cfg.level, "level", "", "level file (YAML)")
	flag.StringVar(&cfg.from, "from", "", "start: waypoint name or x,z")
	flag.StringVar(&cfg.to, "to", "", "target: waypoint name or x,z")
	flag.BoolVar(&cfg.plain, "plain", false, "disable colour output")
	flag.IntVar(&cfg.width, "width", 0, "clip the map to this many columns (0 = terminal width)")
	flag.IntVar(&cfg.maxExpansions, "max-expansions", 0, "give up after this many expanded cells (0 = no limit)")
	flag.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "search timeout")
	flag.BoolVar(&cfg.verbose, "v", false, "log search statistics")
	watch := flag.Bool("watch", false, "re-run when the level file changes")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("navgrid: ")

	if cfg.level == "" || cfg.from == "" || cfg.to == "" {
		flag.Usage()
		os.Exit(2)
	}
	if cfg.verbose {
		cfg.logger = log.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, cfg, os.Stdout)
	if !*watch {
		if err != nil && !errors.Is(err, astar.ErrNoPath) {
			log.Fatal(err)
		}
		if err != nil {
			os.Exit(1)
		}
		return
	}
	if err != nil {
		log.Print(err)
	}

	if err := watchLevel(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

// watchLevel reruns the search on every change to the level file until ctx
// is cancelled.
func watchLevel(ctx context.Context, cfg config) error {
	w, err := level.NewWatcher(cfg.level)
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.level, err)
	}
	defer w.Close()

	log.Printf("watching %s", cfg.level)
	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			log.Printf("%s changed", name)
			if err := run(ctx, cfg, os.Stdout); err != nil {
				log.Print(err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}
