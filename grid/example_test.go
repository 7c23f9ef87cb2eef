// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse and GetNeighbours
////////////////////////////////////////////////////////////////////////////////

// ExampleParse builds a board from ASCII and lists the passable neighbours
// of the centre cell with their entry costs.
func ExampleParse() {
	g, _ := grid.Parse(`
		A#.
		.9.
		..B
	`)

	nbs, _ := g.GetNeighbours(grid.Position{Row: 1, Col: 1})
	for _, nb := range nbs {
		cost, _ := g.GetCost(nb.Pos)
		fmt.Printf("%s -> %v cost %d\n", nb.Action, nb.Pos, cost)
	}
	fmt.Print(g)

	// Output:
	// down -> (2,1) cost 1
	// left -> (1,0) cost 1
	// right -> (1,2) cost 1
	// A#.
	// .9.
	// ..B
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents counts the passable regions of a board
// split by a wall row.
func ExampleGrid_ConnectedComponents() {
	g, _ := grid.Parse("A..\n###\n..B")
	for i, comp := range g.ConnectedComponents() {
		fmt.Println("component", i, comp)
	}

	// Output:
	// component 0 [(0,0) (0,1) (0,2)]
	// component 1 [(2,0) (2,1) (2,2)]
}
