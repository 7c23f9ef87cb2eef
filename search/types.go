// Package search defines core types, options and sentinel errors for
// uniform-cost pathfinding on a grid.Grid.
package search

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the search package.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to a search.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm indicates an Algorithm value or code with no engine.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrExpansionLimit indicates that the search finalized more cells than
	// WithMaxExpansions allows.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBadMaxExpansions indicates a negative expansion cap.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")

	// ErrNilLogger indicates that WithLogger received nil.
	ErrNilLogger = errors.New("search: logger is nil")
)

// Algorithm names one of the search variants. Both run the same
// uniform-cost engine and return identical results for the same grid.
type Algorithm int

const (
	// DijkstrasSearch is the priority-relaxation search ("DS").
	DijkstrasSearch Algorithm = iota
	// BellmanFord is the second named variant ("BF").
	BellmanFord
)

// Code returns the short code of the algorithm ("DS" or "BF").
func (a Algorithm) Code() string {
	switch a {
	case DijkstrasSearch:
		return "DS"
	case BellmanFord:
		return "BF"
	default:
		return "?"
	}
}

// String returns the human-readable name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case DijkstrasSearch:
		return "dijkstra"
	case BellmanFord:
		return "bellman-ford"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts a short code ("DS", "BF") or a name ("dijkstra",
// "bellman-ford", "bellmanford"), case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ds", "dijkstra":
		return DijkstrasSearch, nil
	case "bf", "bellman-ford", "bellmanford", "bellman_ford":
		return BellmanFord, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm: %q: %w", s, ErrUnknownAlgorithm)
	}
}

// Options configures a search run.
//
// Logger        – receives one Debug summary per run. Default zap.NewNop().
// OnVisit       – called with each Position the first time it is explored,
//
//	in exploration order. Default nil.
//
// MaxExpansions – cap on explored cells; 0 means unlimited.
type Options struct {
	Logger        *zap.Logger
	OnVisit       func(grid.Position)
	MaxExpansions int
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns an Options with a no-op logger, no hook and no cap.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
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

// WithOnVisit registers a hook fired once per explored Position.
func WithOnVisit(fn func(grid.Position)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxExpansions caps the number of explored cells. When the search
// would explore cell n+1 it stops with ErrExpansionLimit. Panics if n < 0.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// Result is the outcome of a search: either *Solution or *NoSolution.
// The set of implementations is closed.
type Result interface {
	// Path returns the cells from start to end inclusive; empty when not found.
	Path() []grid.Position
	// Visited returns the explored cells in the order they were first popped.
	Visited() []grid.Position
	// Cost returns the total path cost; 0 when not found.
	Cost() int
	// Found reports whether a path exists.
	Found() bool

	result()
}

// Solution is a successful search: Cells runs from start to end inclusive,
// Explored lists every finalized cell once, PathCost sums the entry cost of
// every cell in Cells except the start.
type Solution struct {
	Cells    []grid.Position
	Explored []grid.Position
	PathCost int
}

func (s *Solution) Path() []grid.Position    { return s.Cells }
func (s *Solution) Visited() []grid.Position { return s.Explored }
func (s *Solution) Cost() int                { return s.PathCost }
func (s *Solution) Found() bool              { return true }
func (*Solution) result()                    {}

// Actions returns the moves that walk Cells from start to end.
func (s *Solution) Actions() []grid.Action {
	if len(s.Cells) < 2 {
		return nil
	}
	out := make([]grid.Action, 0, len(s.Cells)-1)
	for i := 1; i < len(s.Cells); i++ {
		out = append(out, stepAction(s.Cells[i-1], s.Cells[i]))
	}
	return out
}

// NoSolution reports that end is unreachable from start. Explored holds
// every cell visited before the frontier ran dry.
type NoSolution struct {
	Explored []grid.Position
}

func (n *NoSolution) Path() []grid.Position    { return []grid.Position{} }
func (n *NoSolution) Visited() []grid.Position { return n.Explored }
func (n *NoSolution) Cost() int                { return 0 }
func (n *NoSolution) Found() bool              { return false }
func (*NoSolution) result()                    {}

func stepAction(from, to grid.Position) grid.Action {
	switch {
	case to.Row == from.Row-1 && to.Col == from.Col:
		return grid.Up
	case to.Row == from.Row+1 && to.Col == from.Col:
		return grid.Down
	case to.Row == from.Row && to.Col == from.Col-1:
		return grid.Left
	case to.Row == from.Row && to.Col == from.Col+1:
		return grid.Right
	default:
		return grid.NoAction
	}
}
