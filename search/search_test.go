package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

func mustParse(t *testing.T, layout string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(layout)
	require.NoError(t, err)
	return g
}

// checkPath asserts that cells is a contiguous, wall-free walk from start to
// end whose entry costs add up to cost.
func checkPath(t *testing.T, g *grid.Grid, cells []grid.Position, cost int) {
	t.Helper()
	require.NotEmpty(t, cells)
	require.Equal(t, g.Start, cells[0])
	require.Equal(t, g.End, cells[len(cells)-1])

	sum := 0
	for i, p := range cells {
		st, err := g.State(p)
		require.NoError(t, err)
		require.NotEqual(t, grid.Wall, st, "path crosses wall at %v", p)
		if i == 0 {
			continue
		}
		prev := cells[i-1]
		d := abs(p.Row-prev.Row) + abs(p.Col-prev.Col)
		require.Equal(t, 1, d, "non-adjacent step %v -> %v", prev, p)
		c, _ := g.GetCost(p)
		sum += c
	}
	require.Equal(t, cost, sum)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ScenarioSuite covers the reference scenarios for both named variants.
type ScenarioSuite struct {
	suite.Suite
	alg search.Algorithm
}

func (s *ScenarioSuite) run(g *grid.Grid) search.Result {
	res, err := search.Run(s.alg, g)
	require.NoError(s.T(), err)
	return res
}

// TestOpenGrid is a 3×3 board with no walls: cost 4 along a staircase.
func (s *ScenarioSuite) TestOpenGrid() {
	g, err := grid.New(3, 3, pos(0, 0), pos(2, 2))
	require.NoError(s.T(), err)

	res := s.run(g)
	require.True(s.T(), res.Found())
	assert.Equal(s.T(), 4, res.Cost())
	require.Len(s.T(), res.Path(), 5)
	checkPath(s.T(), g, res.Path(), 4)

	// Monotone staircase: rows and columns never decrease.
	p := res.Path()
	for i := 1; i < len(p); i++ {
		assert.GreaterOrEqual(s.T(), p[i].Row, p[i-1].Row)
		assert.GreaterOrEqual(s.T(), p[i].Col, p[i-1].Col)
	}
	// Down is enumerated before Right, so the path hugs the left column.
	assert.Equal(s.T(), []grid.Position{pos(0, 0), pos(1, 0), pos(2, 0), pos(2, 1), pos(2, 2)}, p)
	assert.Equal(s.T(), []grid.Position{
		pos(0, 0), pos(1, 0), pos(0, 1), pos(2, 0), pos(1, 1),
		pos(0, 2), pos(2, 1), pos(1, 2), pos(2, 2),
	}, res.Visited())
}

// TestWallRow routes around a walled middle row.
func (s *ScenarioSuite) TestWallRow() {
	g := mustParse(s.T(), `
		A..
		##.
		B..
	`)
	res := s.run(g)
	require.True(s.T(), res.Found())
	assert.Equal(s.T(), 6, res.Cost())
	checkPath(s.T(), g, res.Path(), 6)
	assert.Equal(s.T(), []grid.Position{
		pos(0, 0), pos(0, 1), pos(0, 2), pos(1, 2), pos(2, 2), pos(2, 1), pos(2, 0),
	}, res.Path())
}

// TestEnclosedStart yields NoSolution having explored only the start.
func (s *ScenarioSuite) TestEnclosedStart() {
	g := mustParse(s.T(), `
		B#.
		#A#
		.#.
	`)
	res := s.run(g)
	require.False(s.T(), res.Found())
	assert.Equal(s.T(), []grid.Position{pos(1, 1)}, res.Visited())
	assert.Empty(s.T(), res.Path())
	assert.Equal(s.T(), 0, res.Cost())
	_, ok := res.(*search.NoSolution)
	assert.True(s.T(), ok)
}

// TestWeightedDetour prefers a longer open detour over a weighted cell.
func (s *ScenarioSuite) TestWeightedDetour() {
	g := mustParse(s.T(), `
		A9B
		...
	`)
	res := s.run(g)
	require.True(s.T(), res.Found())
	assert.Equal(s.T(), 4, res.Cost())
	assert.Equal(s.T(), []grid.Position{pos(0, 0), pos(1, 0), pos(1, 1), pos(1, 2), pos(0, 2)}, res.Path())
}

// TestWeightedShortcut takes the weighted cell when every detour costs more.
func (s *ScenarioSuite) TestWeightedShortcut() {
	g := mustParse(s.T(), `
		A9B
		###
	`)
	res := s.run(g)
	require.True(s.T(), res.Found())
	assert.Equal(s.T(), grid.WeightCost+grid.OpenCost, res.Cost())
	checkPath(s.T(), g, res.Path(), res.Cost())
}

func TestScenarios_Dijkstra(t *testing.T) {
	suite.Run(t, &ScenarioSuite{alg: search.DijkstrasSearch})
}

func TestScenarios_BellmanFord(t *testing.T) {
	suite.Run(t, &ScenarioSuite{alg: search.BellmanFord})
}

// TestErrors covers structural failures.
func TestErrors(t *testing.T) {
	_, err := search.Dijkstra(nil)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	_, err = search.BellmanFordSearch(nil)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	g := mustParse(t, "A.B")
	_, err = search.Run(search.Algorithm(42), g)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	require.NoError(t, g.SetState(g.End, grid.Wall))
	_, err = search.Dijkstra(g)
	assert.ErrorIs(t, err, grid.ErrWallEndpoint)
}

// TestMaxExpansions stops once the cap is exceeded.
func TestMaxExpansions(t *testing.T) {
	g, err := grid.New(5, 5, pos(0, 0), pos(4, 4))
	require.NoError(t, err)

	_, err = search.Dijkstra(g, search.WithMaxExpansions(3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, search.ErrExpansionLimit))

	res, err := search.Dijkstra(g, search.WithMaxExpansions(25))
	require.NoError(t, err)
	assert.True(t, res.Found())

	assert.Panics(t, func() { search.WithMaxExpansions(-1) })
	assert.Panics(t, func() { search.WithLogger(nil) })
}

// TestOnVisit fires once per explored cell in explored order.
func TestOnVisit(t *testing.T) {
	g := mustParse(t, `
		A.#
		.9.
		#.B
	`)
	var seen []grid.Position
	res, err := search.Dijkstra(g, search.WithOnVisit(func(p grid.Position) {
		seen = append(seen, p)
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Visited(), seen)
}

// TestLogger emits one debug summary per run.
func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := mustParse(t, "A..\n...\n..B")

	_, err := search.BellmanFordSearch(g, search.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("search finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "BF", fields["algorithm"])
	assert.Equal(t, true, fields["found"])
	assert.EqualValues(t, 4, fields["cost"])
}

// TestDeterminism repeats a search and compares every output.
func TestDeterminism(t *testing.T) {
	g := mustParse(t, `
		A..9....
		.#.#.##.
		.#9..#..
		...#.9.#
		.##....B
	`)
	first, err := search.Dijkstra(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := search.Dijkstra(g)
		require.NoError(t, err)
		assert.Equal(t, first.Path(), again.Path())
		assert.Equal(t, first.Visited(), again.Visited())
		assert.Equal(t, first.Cost(), again.Cost())
	}
}

// TestSearchLeavesGridUntouched checks that searching never mutates cells.
func TestSearchLeavesGridUntouched(t *testing.T) {
	g := mustParse(t, "A9.\n.#.\n..B")
	before := g.String()
	_, err := search.Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, before, g.String())
}

// TestParseAlgorithm maps codes and names.
func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want search.Algorithm
	}{
		{"DS", search.DijkstrasSearch},
		{"ds", search.DijkstrasSearch},
		{"Dijkstra", search.DijkstrasSearch},
		{"BF", search.BellmanFord},
		{"bellman-ford", search.BellmanFord},
		{" BellmanFord ", search.BellmanFord},
	}
	for _, tc := range cases {
		got, err := search.ParseAlgorithm(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	_, err := search.ParseAlgorithm("astar")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	assert.Equal(t, "DS", search.DijkstrasSearch.Code())
	assert.Equal(t, "BF", search.BellmanFord.Code())
	assert.Equal(t, "bellman-ford", search.BellmanFord.String())
}

// TestActions derives moves from consecutive path cells.
func TestActions(t *testing.T) {
	g := mustParse(t, "A9B\n...")
	res, err := search.Dijkstra(g)
	require.NoError(t, err)
	sol, ok := res.(*search.Solution)
	require.True(t, ok)
	assert.Equal(t, []grid.Action{grid.Down, grid.Right, grid.Right, grid.Up}, sol.Actions())
}
