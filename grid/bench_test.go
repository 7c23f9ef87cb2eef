package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// randomGrid builds an n×n board with roughly 25% walls from a fixed seed.
func randomGrid(b *testing.B, n int) *grid.Grid {
	rng := rand.New(rand.NewSource(42))
	cells := make(map[grid.Position]grid.CellState)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Intn(4) == 0 {
				cells[grid.Position{Row: r, Col: c}] = grid.Wall
			}
		}
	}
	start, end := grid.Position{}, grid.Position{Row: n - 1, Col: n - 1}
	delete(cells, start)
	delete(cells, end)
	g, err := grid.New(n, n, start, end, grid.WithCells(cells))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	return g
}

// BenchmarkConnectedComponents measures region labelling on a 500×500 board.
// Complexity: O(W×H)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkWeightedGraph measures the gonum export on a 200×200 board.
func BenchmarkWeightedGraph(b *testing.B) {
	g := randomGrid(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.WeightedGraph()
	}
}
