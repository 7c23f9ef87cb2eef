package maze

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/grid"
)

// WeightPass marks each Open cell other than start and end as Weighted with
// probability Density, emitting one MarkWeight record per changed cell.
// Complexity: O(W×H).
func (gen *Generator) WeightPass(g *grid.Grid) error {
	return gen.pass(g, "WeightPass", grid.Weighted, MarkWeight)
}

// WallPass turns each Open or Weighted cell other than start and end into a
// Wall with probability Density, emitting one MarkWall record per changed
// cell. Complexity: O(W×H).
func (gen *Generator) WallPass(g *grid.Grid) error {
	return gen.pass(g, "WallPass", grid.Wall, MarkWall)
}

// pass runs one decoration sweep. Every row draws from its own stream, and
// every cell consumes exactly one draw, so the result is a function of the
// generator state alone. Rows may run concurrently; they touch disjoint
// cells and records are joined back in row-major order.
func (gen *Generator) pass(g *grid.Grid, method string, to grid.CellState, mark Marker) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGrid)
	}
	parent := gen.rng.Int63()
	density := gen.opts.Density
	rows := make([][]Cell, g.Height)

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(gen.opts.Workers)
	for r := 0; r < g.Height; r++ {
		r := r
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rowRNG(parent, r)
			var out []Cell
			for c := 0; c < g.Width; c++ {
				hit := rng.Float64() < density
				p := grid.Position{Row: r, Col: c}
				if !hit || g.IsEndpoint(p) {
					continue
				}
				st, err := g.State(p)
				if err != nil {
					return err
				}
				// Walls stay; a cell already in the target state emits nothing.
				if st == grid.Wall || st == to {
					continue
				}
				if err = g.SetState(p, to); err != nil {
					return err
				}
				out = append(out, Cell{Pos: p, Marker: mark, Gap: PassGap})
			}
			rows[r] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	var cells []Cell
	for _, row := range rows {
		cells = append(cells, row...)
	}
	gen.emit(cells, PassGap)
	gen.log.Debug("decoration pass",
		zap.String("pass", method),
		zap.Int("decorated", len(cells)),
		zap.Int("workers", gen.opts.Workers),
	)
	return nil
}
