// Command gridpath builds a board, carves or decorates it, solves it and
// prints the result as ASCII.
//
// Settings come from the config package (.env, GRIDPATH_* variables and an
// optional YAML file named by GRIDPATH_CONFIG).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(2)
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err = run(os.Stdout, cfg, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// run is main without process exits, so it can be driven from tests.
func run(w io.Writer, cfg config.Config, logger *zap.Logger) error {
	alg, err := search.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	g, err := grid.New(cfg.Width, cfg.Height,
		grid.Position{},
		grid.Position{Row: cfg.Height - 1, Col: cfg.Width - 1},
	)
	if err != nil {
		return err
	}

	rec := &maze.Recorder{}
	gen := maze.New(
		maze.WithSeed(cfg.Seed),
		maze.WithDensity(cfg.Density),
		maze.WithWorkers(cfg.Workers),
		maze.WithAnimator(rec),
		maze.WithLogger(logger.Named("maze")),
	)
	if err = carve(gen, g, cfg.Maze); err != nil {
		return err
	}

	res, err := search.Run(alg, g, search.WithLogger(logger.Named("search")))
	if err != nil {
		return err
	}

	fmt.Fprint(w, g.Render(res.Path()))
	open, weighted, walls := g.Counts()
	fmt.Fprintf(w, "board %dx%d: %s open, %s weighted, %s walls (%s animated cells)\n",
		g.Width, g.Height,
		humanize.Comma(int64(open)), humanize.Comma(int64(weighted)),
		humanize.Comma(int64(walls)), humanize.Comma(int64(len(rec.Cells()))))
	if !res.Found() {
		fmt.Fprintf(w, "%s: no path; explored %s cells\n", alg, humanize.Comma(int64(len(res.Visited()))))
		return nil
	}
	fmt.Fprintf(w, "%s: cost %s over %s steps; explored %s cells\n",
		alg, humanize.Comma(int64(res.Cost())),
		humanize.Comma(int64(len(res.Path())-1)),
		humanize.Comma(int64(len(res.Visited()))))
	return nil
}

func carve(gen *maze.Generator, g *grid.Grid, kind string) error {
	switch kind {
	case config.MazeNone:
		return nil
	case config.MazeRandom:
		return gen.WallPass(g)
	case config.MazeWeights:
		return gen.WeightPass(g)
	case config.MazeDivision:
		if err := gen.RecursiveDivision(g); err != nil {
			return err
		}
		return gen.WeightPass(g)
	case config.MazeDFS:
		return gen.RandomizedDFS(g)
	default:
		return fmt.Errorf("carve: unknown maze %q", kind)
	}
}
