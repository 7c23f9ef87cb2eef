// Package maze defines core types, options and sentinel errors for
// generating and decorating grid.Grid boards.
package maze

import (
	"errors"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the maze package.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrInvalidCarveRegion indicates a region without room for an even wall
	// coordinate and an odd hole coordinate, or one reaching outside the
	// grid. The recursive driver treats it as a base case.
	ErrInvalidCarveRegion = errors.New("maze: region too small to carve")

	// ErrBadDensity indicates a decoration probability outside [0,1].
	ErrBadDensity = errors.New("maze: density must be within [0,1]")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("maze: workers must be at least 1")

	// ErrNilRand indicates that WithRand received nil.
	ErrNilRand = errors.New("maze: rand source is nil")

	// ErrNilLogger indicates that WithLogger received nil.
	ErrNilLogger = errors.New("maze: logger is nil")
)

// DefaultDensity is the probability with which a pass decorates a cell.
const DefaultDensity = 0.2

// Sequencing gaps attached to animation batches.
const (
	PassGap = 2 // weight and wall passes
	LineGap = 1 // carved lines and corridors
)

// Marker is the target appearance of an animated cell.
type Marker uint8

const (
	// MarkWeight paints a cell as weighted.
	MarkWeight Marker = iota + 1
	// MarkWall paints a cell as a wall.
	MarkWall
	// MarkOpen paints a cell as open (corridor carving).
	MarkOpen
)

func (m Marker) String() string {
	switch m {
	case MarkWeight:
		return "weight"
	case MarkWall:
		return "wall"
	case MarkOpen:
		return "open"
	default:
		return "none"
	}
}

// Cell is one "cell to animate" record. Searches never read it.
type Cell struct {
	Pos    grid.Position
	Marker Marker
	Gap    int
}

// Batch groups records emitted by one operation, in decoration order.
type Batch struct {
	Cells []Cell
	Gap   int
}

// Animator consumes batches. Animate must not block the generator for long;
// the generator never waits on or reads back from it.
type Animator interface {
	Animate(Batch)
}

// AnimatorFunc adapts a function to Animator.
type AnimatorFunc func(Batch)

// Animate calls f(b).
func (f AnimatorFunc) Animate(b Batch) { f(b) }

// Recorder is an Animator that keeps every batch it receives.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	batches []Batch
}

// Animate appends b.
func (r *Recorder) Animate(b Batch) {
	r.mu.Lock()
	r.batches = append(r.batches, b)
	r.mu.Unlock()
}

// Batches returns a copy of the recorded batches.
func (r *Recorder) Batches() []Batch {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Batch, len(r.batches))
	copy(out, r.batches)
	return out
}

// Cells flattens every recorded batch in arrival order.
func (r *Recorder) Cells() []Cell {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Cell
	for _, b := range r.batches {
		out = append(out, b.Cells...)
	}
	return out
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.batches = nil
	r.mu.Unlock()
}

// Options configures a Generator.
//
// Seed     – seed for the default source; 0 selects defaultSeed.
// Rand     – explicit source; overrides Seed.
// Density  – per-cell decoration probability of WeightPass and WallPass.
// Animator – receives animation batches; nil discards them.
// Logger   – Debug summaries per operation. Default zap.NewNop().
// Workers  – goroutines used by the decoration passes. Default 1.
type Options struct {
	Seed     int64
	Rand     *rand.Rand
	Density  float64
	Animator Animator
	Logger   *zap.Logger
	Workers  int
}

// Option represents a functional option for configuring a Generator.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		Density: DefaultDensity,
		Logger:  zap.NewNop(),
		Workers: 1,
	}
}

// WithSeed fixes the seed of the generator's random source.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the random source directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			panic(ErrNilRand.Error())
		}
		o.Rand = r
	}
}

// WithDensity sets the decoration probability. Panics outside [0,1].
func WithDensity(p float64) Option {
	return func(o *Options) {
		if !(p >= 0 && p <= 1) {
			panic(ErrBadDensity.Error())
		}
		o.Density = p
	}
}

// WithAnimator routes animation batches to a.
func WithAnimator(a Animator) Option {
	return func(o *Options) {
		o.Animator = a
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic(ErrNilLogger.Error())
		}
		o.Logger = l
	}
}

// WithWorkers sets how many rows the decoration passes process in parallel.
// Results do not depend on n. Panics if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}
