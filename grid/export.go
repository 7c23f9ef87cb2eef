package grid

import (
	"gonum.org/v1/gonum/graph/simple"
)

// WeightedGraph converts the grid into a directed gonum graph. Every non-wall
// cell becomes a node whose ID is its row-major index (see ID/PositionOf);
// each orthogonal move u→v between passable cells becomes an edge weighted by
// the cost of entering v, so path weights equal grid path costs.
// Complexity: O(W×H) time and memory.
func (g *Grid) WeightedGraph() *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, 0)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := Position{Row: r, Col: c}
			if g.cells[g.index(p)] == Wall {
				continue
			}
			if wg.Node(g.ID(p)) == nil {
				wg.AddNode(simple.Node(g.ID(p)))
			}
			nbs, _ := g.GetNeighbours(p)
			for _, nb := range nbs {
				wg.SetWeightedEdge(wg.NewWeightedEdge(
					simple.Node(g.ID(p)),
					simple.Node(g.ID(nb.Pos)),
					float64(g.cells[g.index(nb.Pos)].Cost()),
				))
			}
		}
	}
	return wg
}
