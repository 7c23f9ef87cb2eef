package grid

import (
	"fmt"
	"strings"
)

// Layout symbols shared by Parse and String.
const (
	SymbolOpen     = '.'
	SymbolOpenAlt  = '1'
	SymbolWeighted = '9'
	SymbolWall     = '#'
	SymbolStart    = 'A'
	SymbolEnd      = 'B'
	SymbolPath     = '*'
)

// Parse builds a Grid from an ASCII layout, one row per line. Blank leading
// and trailing lines and surrounding spaces are ignored. Start and end count
// as open cells.
//
//	A..#
//	.9.#
//	...B
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol (wrapped with the
// offending row and column) or ErrMissingEndpoint.
// Complexity: O(W×H).
func Parse(layout string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(strings.TrimSpace(layout), "\n") {
		rows = append(rows, strings.TrimSpace(line))
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("Parse: %w", ErrEmptyGrid)
	}
	w := len(rows[0])
	for _, r := range rows {
		if len(r) != w {
			return nil, fmt.Errorf("Parse: %w", ErrNonRectangular)
		}
	}

	cells := make(map[Position]CellState)
	var starts, ends []Position
	for r, line := range rows {
		for c, ch := range line {
			p := Position{Row: r, Col: c}
			switch ch {
			case SymbolOpen, SymbolOpenAlt:
			case SymbolWeighted:
				cells[p] = Weighted
			case SymbolWall:
				cells[p] = Wall
			case SymbolStart:
				starts = append(starts, p)
			case SymbolEnd:
				ends = append(ends, p)
			default:
				return nil, fmt.Errorf("Parse: %q at %v: %w", ch, p, ErrUnknownSymbol)
			}
		}
	}
	if len(starts) != 1 || len(ends) != 1 {
		return nil, fmt.Errorf("Parse: %d start(s), %d end(s): %w", len(starts), len(ends), ErrMissingEndpoint)
	}

	return New(w, len(rows), starts[0], ends[0], WithCells(cells))
}

// String renders the grid with the Parse alphabet.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the grid and overlays path cells (other than the endpoints)
// with SymbolPath.
func (g *Grid) Render(path []Position) string {
	on := make(map[Position]struct{}, len(path))
	for _, p := range path {
		on[p] = struct{}{}
	}

	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := Position{Row: r, Col: c}
			b.WriteByte(g.symbol(p, on))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) symbol(p Position, path map[Position]struct{}) byte {
	switch {
	case p == g.Start:
		return SymbolStart
	case p == g.End:
		return SymbolEnd
	}
	if _, ok := path[p]; ok {
		return SymbolPath
	}
	switch g.cells[g.index(p)] {
	case Weighted:
		return SymbolWeighted
	case Wall:
		return SymbolWall
	default:
		return SymbolOpen
	}
}
