package maze

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
)

// RandomizedDFS fills g with walls and carves a spanning tree of corridors
// over the even-indexed lattice with a randomized backtracking walk, then
// links Start and End into it. Weighted cells are discarded. Carved cells are
// emitted as MarkOpen records in carving order.
// Complexity: O(W×H).
func (gen *Generator) RandomizedDFS(g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("RandomizedDFS: %w", ErrNilGrid)
	}
	g.Fill(grid.Wall)

	var cells []Cell
	open := func(p grid.Position) {
		if st, _ := g.State(p); st != grid.Open {
			_ = g.SetState(p, grid.Open)
			cells = append(cells, Cell{Pos: p, Marker: MarkOpen, Gap: LineGap})
		}
	}

	seen := make([]bool, g.Width*g.Height)
	unseen := func(q grid.Position) bool { return !seen[g.ID(q)] }

	root := lattice(g.Start)
	seen[g.ID(root)] = true
	open(root)
	stack := []grid.Position{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		next := twoStepNeighbours(g, cur, unseen)
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		nb := next[gen.rng.Intn(len(next))]
		seen[g.ID(nb)] = true
		open(grid.Position{Row: (cur.Row + nb.Row) / 2, Col: (cur.Col + nb.Col) / 2})
		open(nb)
		stack = append(stack, nb)
	}

	for _, p := range [2]grid.Position{g.Start, g.End} {
		for _, q := range linkToLattice(p) {
			open(q)
		}
	}

	gen.emit(cells, LineGap)
	gen.log.Debug("randomized dfs", zap.Int("carved", len(cells)))
	return nil
}

// lattice returns the even-indexed cell at or above-left of p.
func lattice(p grid.Position) grid.Position {
	return grid.Position{Row: p.Row &^ 1, Col: p.Col &^ 1}
}

// linkToLattice lists the cells from p (exclusive) to lattice(p) (inclusive)
// moving up and then left, one step at a time.
func linkToLattice(p grid.Position) []grid.Position {
	var out []grid.Position
	if p.Row%2 != 0 {
		p.Row--
		out = append(out, p)
	}
	if p.Col%2 != 0 {
		p.Col--
		out = append(out, p)
	}
	return out
}

// twoStepNeighbours returns the in-bounds cells two steps away from p in
// Up, Down, Left, Right order, keeping those accepted by keep (all when nil).
func twoStepNeighbours(g *grid.Grid, p grid.Position, keep func(grid.Position) bool) []grid.Position {
	cand := [4]grid.Position{
		{Row: p.Row - 2, Col: p.Col},
		{Row: p.Row + 2, Col: p.Col},
		{Row: p.Row, Col: p.Col - 2},
		{Row: p.Row, Col: p.Col + 2},
	}
	out := make([]grid.Position, 0, len(cand))
	for _, q := range cand {
		if !g.InBounds(q) || (keep != nil && !keep(q)) {
			continue
		}
		out = append(out, q)
	}
	return out
}
