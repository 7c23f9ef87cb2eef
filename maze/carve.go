// SPDX-License-Identifier: MIT
// Package: gridpath/maze
//
// carve.go — wall-line primitive and recursive division.
//
// Lattice convention:
//   • Walls sit on even lines, holes on odd ones. A later wall inside a
//     chamber lies on an even line and therefore never covers the odd-indexed
//     cells on either side of an earlier hole.
//   • Chambers are inclusive rectangles [r1,r2]×[c1,c2] bounded by earlier
//     walls or the grid edge.
//
// Contract:
//   • Start and End are never walled, and an endpoint on a line keeps an
//     odd neighbour on that line open.
//   • ErrInvalidCarveRegion stops recursion for that chamber; it never
//     escapes RecursiveDivision.

package maze

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
)

// minChamber is the largest chamber side that is never divided.
const minChamber = 2

// DrawLine carves one straight wall with a single hole.
//
// Rows are addressed by x and columns by y. With horizontal set the wall is a
// row: its index is a random even value in [x1,x2) (x1 bumped to even first)
// and the hole a random odd column in [y1,y2) (y1 bumped to odd). The line
// covers columns y1..y2 inclusive, counted from the y1 passed in. Vertical
// lines swap the roles: the wall is an even column from [y1,y2), the hole
// an odd row from [x1,x2), and the line covers rows x1..x2.
//
// Every covered cell except the hole, Start and End becomes a Wall and is
// emitted as a MarkWall record in line order. An endpoint on an even index
// of the line also keeps its odd neighbour on the line open (index+1, or
// index-1 at the line's far end), so crossing walls cannot seal it in. Returns the wall index, or
// ErrInvalidCarveRegion when no wall or hole index exists or the region
// leaves the grid.
// Complexity: O(line length).
func (gen *Generator) DrawLine(g *grid.Grid, x1, x2, y1, y2 int, horizontal bool) (int, error) {
	wall, _, err := gen.drawLine(g, x1, x2, y1, y2, horizontal)
	return wall, err
}

// drawLine is DrawLine that also reports the hole index.
func (gen *Generator) drawLine(g *grid.Grid, x1, x2, y1, y2 int, horizontal bool) (wall, hole int, err error) {
	if g == nil {
		return 0, 0, fmt.Errorf("DrawLine: %w", ErrNilGrid)
	}

	// a: axis the wall index is drawn from; b: axis the line runs along.
	a1, a2, b1, b2 := x1, x2, y1, y2
	aMax, bMax := g.Height, g.Width
	at := func(a, b int) grid.Position { return grid.Position{Row: a, Col: b} }
	if !horizontal {
		a1, a2, b1, b2 = y1, y2, x1, x2
		aMax, bMax = g.Width, g.Height
		at = func(a, b int) grid.Position { return grid.Position{Row: b, Col: a} }
	}
	if a1 < 0 || b1 < 0 || a2 > aMax || b2 >= bMax || b1 > b2 {
		return 0, 0, fmt.Errorf("DrawLine: [%d,%d)×[%d,%d] outside %dx%d: %w",
			x1, x2, y1, y2, g.Width, g.Height, ErrInvalidCarveRegion)
	}

	var ok bool
	if wall, ok = evenIn(gen.rng, a1, a2); !ok {
		return 0, 0, fmt.Errorf("DrawLine: no even wall in [%d,%d): %w", a1, a2, ErrInvalidCarveRegion)
	}
	if hole, ok = oddIn(gen.rng, b1, b2); !ok {
		return 0, 0, fmt.Errorf("DrawLine: no odd hole in [%d,%d): %w", b1, b2, ErrInvalidCarveRegion)
	}

	keep := endpointGaps(g, wall, b1, b2, at)
	cells := make([]Cell, 0, b2-b1+1)
	for b := b1; b <= b2; b++ {
		if b == hole || keep[b] {
			continue
		}
		p := at(wall, b)
		if g.IsEndpoint(p) {
			continue
		}
		if err = g.SetState(p, grid.Wall); err != nil {
			return 0, 0, err
		}
		cells = append(cells, Cell{Pos: p, Marker: MarkWall, Gap: LineGap})
	}
	gen.emit(cells, LineGap)
	return wall, hole, nil
}

// endpointGaps returns the line indices left open beside an endpoint that
// sits on the line at an even index. A later perpendicular wall may cross
// the line there and close the endpoint's other sides; the odd neighbour on
// the line is never covered again.
func endpointGaps(g *grid.Grid, wall, b1, b2 int, at func(a, b int) grid.Position) map[int]bool {
	var keep map[int]bool
	for b := b1; b <= b2; b++ {
		if b%2 != 0 || !g.IsEndpoint(at(wall, b)) {
			continue
		}
		n := b + 1
		if n > b2 {
			n = b - 1
		}
		if n < b1 {
			continue
		}
		if keep == nil {
			keep = make(map[int]bool, 2)
		}
		keep[n] = true
	}
	return keep
}

// chamber is an inclusive rectangle still to be divided.
type chamber struct {
	r1, r2, c1, c2 int
	horizontal     bool
}

// RecursiveDivision turns every wall of g into an open cell and then divides
// the board into a maze of one-hole walls. Every passable cell stays
// reachable from every other. Chambers whose width or height is at most two,
// or that admit no line in either orientation, are left as they are.
// Complexity: O(W×H) cells written, O(W×H) chambers at most.
func (gen *Generator) RecursiveDivision(g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("RecursiveDivision: %w", ErrNilGrid)
	}
	openWalls(g)

	lines := 0
	root := chamber{r1: 0, r2: g.Height - 1, c1: 0, c2: g.Width - 1, horizontal: g.Height >= g.Width}
	if err := gen.divide(g, root, &lines); err != nil {
		return fmt.Errorf("RecursiveDivision: %w", err)
	}

	gen.log.Debug("recursive division",
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Int("lines", lines),
	)
	return nil
}

func (gen *Generator) divide(g *grid.Grid, ch chamber, lines *int) error {
	if ch.r2-ch.r1+1 <= minChamber || ch.c2-ch.c1+1 <= minChamber {
		return nil
	}

	orient := ch.horizontal
	wall, err := gen.split(g, ch, orient)
	if errors.Is(err, ErrInvalidCarveRegion) {
		orient = !orient
		wall, err = gen.split(g, ch, orient)
	}
	if errors.Is(err, ErrInvalidCarveRegion) {
		return nil
	}
	if err != nil {
		return err
	}
	*lines++

	first, second := ch, ch
	first.horizontal, second.horizontal = !orient, !orient
	if orient {
		first.r2, second.r1 = wall-1, wall+1
	} else {
		first.c2, second.c1 = wall-1, wall+1
	}
	if err = gen.divide(g, first, lines); err != nil {
		return err
	}
	return gen.divide(g, second, lines)
}

// split carves one line strictly inside ch.
func (gen *Generator) split(g *grid.Grid, ch chamber, horizontal bool) (int, error) {
	if horizontal {
		return gen.DrawLine(g, ch.r1+1, ch.r2, ch.c1, ch.c2, true)
	}
	return gen.DrawLine(g, ch.r1, ch.r2, ch.c1+1, ch.c2, false)
}

// openWalls reopens every wall cell, leaving weights in place.
func openWalls(g *grid.Grid) {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Position{Row: r, Col: c}
			if st, _ := g.State(p); st == grid.Wall {
				_ = g.SetState(p, grid.Open)
			}
		}
	}
}
