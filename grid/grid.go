// Package grid models a rectangular board of open, weighted and wall cells
// with a designated start and end. It supports:
//
//   - Bounds-checked cell queries (state, cost, orthogonal neighbours)
//   - Per-search Node arenas for in-place relaxation
//   - ASCII layouts for construction and rendering
//   - Reachability analysis and export to a gonum weighted graph
//
// Dimensions never change after construction.
package grid

import "fmt"

// Grid is a fixed-size board. Width and Height define dimensions; every
// in-bounds Position has exactly one CellState stored in row-major order.
// Start and End are in-bounds, distinct, non-wall positions.
type Grid struct {
	Width, Height int
	Start, End    Position

	cells []CellState
	nodes *Arena
}

// New constructs a width×height Grid with every cell Open unless WithCells
// supplies initial states.
// Returns ErrEmptyGrid if a dimension is not positive, ErrOutOfBounds if a
// seeded cell or an endpoint lies outside the board, ErrUnknownState if a
// seeded state is not Valid, ErrSameEndpoints if start == end, and
// ErrWallEndpoint if an endpoint is seeded as a wall.
// Complexity: O(W×H) time and memory.
func New(width, height int, start, end Position, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New: %dx%d: %w", width, height, ErrEmptyGrid)
	}
	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{
		Width:  width,
		Height: height,
		Start:  start,
		End:    end,
		cells:  make([]CellState, width*height),
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("New: start %v: %w", start, ErrOutOfBounds)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("New: end %v: %w", end, ErrOutOfBounds)
	}
	if start == end {
		return nil, fmt.Errorf("New: %v: %w", start, ErrSameEndpoints)
	}
	for p, s := range cfg.cells {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("New: cell %v: %w", p, ErrOutOfBounds)
		}
		if !s.Valid() {
			return nil, fmt.Errorf("New: cell %v: %v: %w", p, s, ErrUnknownState)
		}
		g.cells[g.index(p)] = s
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// index maps p to a row-major index: Row*Width + Col.
func (g *Grid) index(p Position) int {
	return p.Row*g.Width + p.Col
}

// ID returns the row-major index of p. The caller must ensure p is in bounds.
func (g *Grid) ID(p Position) int64 {
	return int64(g.index(p))
}

// PositionOf converts a row-major index back to a Position.
func (g *Grid) PositionOf(id int64) Position {
	return Position{Row: int(id) / g.Width, Col: int(id) % g.Width}
}

func (g *Grid) check(method string, p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%s: %v in %dx%d: %w", method, p, g.Width, g.Height, ErrOutOfBounds)
	}
	return nil
}

// State returns the state of the cell at p.
func (g *Grid) State(p Position) (CellState, error) {
	if err := g.check("State", p); err != nil {
		return Open, err
	}
	return g.cells[g.index(p)], nil
}

// SetState overwrites the state of the cell at p. It checks bounds and
// rejects states that are not Valid with ErrUnknownState; callers that
// decorate the board must skip the endpoints themselves.
func (g *Grid) SetState(p Position, s CellState) error {
	if err := g.check("SetState", p); err != nil {
		return err
	}
	if !s.Valid() {
		return fmt.Errorf("SetState: %v: %w", s, ErrUnknownState)
	}
	g.cells[g.index(p)] = s
	return nil
}

// IsEndpoint reports whether p is the start or the end.
func (g *Grid) IsEndpoint(p Position) bool {
	return p == g.Start || p == g.End
}

// Validate re-checks the endpoint invariants: both in bounds, distinct and
// not walls.
func (g *Grid) Validate() error {
	for _, p := range [2]Position{g.Start, g.End} {
		if err := g.check("Validate", p); err != nil {
			return err
		}
		if g.cells[g.index(p)] == Wall {
			return fmt.Errorf("Validate: %v: %w", p, ErrWallEndpoint)
		}
	}
	if g.Start == g.End {
		return fmt.Errorf("Validate: %v: %w", g.Start, ErrSameEndpoints)
	}
	return nil
}

// GetNode returns the canonical Node for p from the grid-owned arena,
// creating it on first use. ResetNodes discards every node handed out so far.
func (g *Grid) GetNode(p Position) (*Node, error) {
	if g.nodes == nil {
		g.nodes = NewArena(g)
	}
	return g.nodes.Node(p)
}

// ResetNodes drops the grid-owned arena.
func (g *Grid) ResetNodes() {
	g.nodes = nil
}

// GetNeighbours returns the in-bounds, non-wall orthogonal neighbours of p
// in the fixed order Up, Down, Left, Right.
// Complexity: O(1).
func (g *Grid) GetNeighbours(p Position) ([]Neighbour, error) {
	if err := g.check("GetNeighbours", p); err != nil {
		return nil, err
	}
	out := make([]Neighbour, 0, len(actionOrder))
	for _, a := range actionOrder {
		dr, dc := a.Delta()
		q := Position{Row: p.Row + dr, Col: p.Col + dc}
		if !g.InBounds(q) || g.cells[g.index(q)] == Wall {
			continue
		}
		out = append(out, Neighbour{Action: a, Pos: q})
	}
	return out, nil
}

// GetCost returns the cost of entering p: OpenCost, WeightCost, or 0 for walls.
func (g *Grid) GetCost(p Position) (int, error) {
	if err := g.check("GetCost", p); err != nil {
		return 0, err
	}
	return g.cells[g.index(p)].Cost(), nil
}

// Counts tallies cells by state.
func (g *Grid) Counts() (open, weighted, walls int) {
	for _, s := range g.cells {
		switch s {
		case Open:
			open++
		case Weighted:
			weighted++
		case Wall:
			walls++
		}
	}
	return open, weighted, walls
}

// Clone returns a deep copy of the board without any node arena.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]CellState, len(g.cells))
	copy(c.cells, g.cells)
	c.nodes = nil
	return &c
}

// Fill sets every cell to s, leaving the endpoints open when s is Wall.
// Panics if s is not Valid.
func (g *Grid) Fill(s CellState) {
	if !s.Valid() {
		panic(fmt.Sprintf("grid: Fill(%v): %v", s, ErrUnknownState))
	}
	for i := range g.cells {
		g.cells[i] = s
	}
	if s == Wall {
		g.cells[g.index(g.Start)] = Open
		g.cells[g.index(g.End)] = Open
	}
}
