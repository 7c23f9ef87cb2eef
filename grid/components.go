package grid

// Reachable returns every non-wall cell reachable from `from` through
// orthogonal moves, in BFS order (from first). A wall origin reaches nothing.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Reachable(from Position) ([]Position, error) {
	if err := g.check("Reachable", from); err != nil {
		return nil, err
	}
	if g.cells[g.index(from)] == Wall {
		return nil, nil
	}
	seen := make([]bool, len(g.cells))
	seen[g.index(from)] = true
	queue := []Position{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, a := range actionOrder {
			dr, dc := a.Delta()
			v := Position{Row: u.Row + dr, Col: u.Col + dc}
			if !g.InBounds(v) || g.cells[g.index(v)] == Wall {
				continue
			}
			if vi := g.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue, nil
}

// ConnectedComponents partitions all non-wall cells into orthogonally
// connected regions, scanning seeds in row-major order.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (g *Grid) ConnectedComponents() [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := Position{Row: r, Col: c}
			i := g.index(p)
			if seen[i] || g.cells[i] == Wall {
				continue
			}
			comp, _ := g.Reachable(p)
			for _, q := range comp {
				seen[g.index(q)] = true
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// Connected reports whether every passable cell lies in one component.
func (g *Grid) Connected() bool {
	return len(g.ConnectedComponents()) <= 1
}
