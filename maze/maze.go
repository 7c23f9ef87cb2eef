package maze

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
)

// Generator decorates and carves grids. It owns a random source and is
// therefore not safe for concurrent use; create one per goroutine.
type Generator struct {
	opts Options
	rng  *rand.Rand
	log  *zap.Logger
}

// New builds a Generator from DefaultOptions overridden by opts.
func New(opts ...Option) *Generator {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := cfg.Rand
	if r == nil {
		r = rngFromSeed(cfg.Seed)
	}
	return &Generator{opts: cfg, rng: r, log: cfg.Logger}
}

// Density returns the configured decoration probability.
func (gen *Generator) Density() float64 { return gen.opts.Density }

// emit hands a non-empty batch to the animator, if any.
func (gen *Generator) emit(cells []Cell, gap int) {
	if gen.opts.Animator == nil || len(cells) == 0 {
		return
	}
	gen.opts.Animator.Animate(Batch{Cells: cells, Gap: gap})
}

// Clear resets every cell of g to Open.
func (gen *Generator) Clear(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	g.Fill(grid.Open)
	gen.log.Debug("maze cleared", zap.Int("cells", g.Width*g.Height))
	return nil
}
