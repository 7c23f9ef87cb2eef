// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates non-positive width or height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a Position outside [0,Height)×[0,Width).
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrWallEndpoint indicates that start or end sits on a wall.
	ErrWallEndpoint = errors.New("grid: start and end must not be walls")
	// ErrSameEndpoints indicates that start and end are the same cell.
	ErrSameEndpoints = errors.New("grid: start and end must differ")
	// ErrMissingEndpoint indicates a layout without exactly one start and one end.
	ErrMissingEndpoint = errors.New("grid: layout needs exactly one start and one end")
	// ErrUnknownSymbol indicates an unrecognised layout character.
	ErrUnknownSymbol = errors.New("grid: unknown layout symbol")
	// ErrUnknownState indicates a CellState other than Open, Weighted or Wall.
	ErrUnknownState = errors.New("grid: unknown cell state")
)

// Traversal costs for passable cells.
const (
	// OpenCost is the cost of entering an open cell.
	OpenCost = 1
	// WeightCost is the cost of entering a weighted cell.
	WeightCost = 9
)

// Position identifies a cell by row and column. It is comparable and
// therefore usable as a map key.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Action is one of the four cardinal moves.
type Action int

const (
	// NoAction is the zero value: the node has not been reached by a move yet.
	NoAction Action = iota
	// Up decreases the row.
	Up
	// Down increases the row.
	Down
	// Left decreases the column.
	Left
	// Right increases the column.
	Right
)

// actionOrder fixes neighbour enumeration order; search tie-breaks depend on it.
var actionOrder = [4]Action{Up, Down, Left, Right}

// Delta returns the (row, col) offset of the action.
func (a Action) Delta() (int, int) {
	switch a {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the lower-case action name.
func (a Action) String() string {
	switch a {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// CellState classifies a cell.
type CellState uint8

const (
	// Open cells cost OpenCost to enter.
	Open CellState = iota
	// Weighted cells cost WeightCost to enter.
	Weighted
	// Wall cells are impassable.
	Wall
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case Open:
		return "open"
	case Weighted:
		return "weighted"
	case Wall:
		return "wall"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the declared states.
func (s CellState) Valid() bool { return s <= Wall }

// Passable reports whether the state can be entered.
func (s CellState) Passable() bool { return s != Wall }

// Cost returns the traversal cost of the state; walls cost 0.
func (s CellState) Cost() int {
	switch s {
	case Open:
		return OpenCost
	case Weighted:
		return WeightCost
	default:
		return 0
	}
}

// Node is a search-tree entry for one Position.
//
// Parent is a lookup-only back-reference into the same Arena; it never owns
// the parent and path reconstruction only reads it. Action is assigned once
// (first write wins) and Cost is the edge cost from Parent to this node.
type Node struct {
	State  Position
	Parent *Node
	Action Action
	Cost   int
}

// SetAction records a once the node has no action yet. It reports whether
// the action was stored.
func (n *Node) SetAction(a Action) bool {
	if n.Action != NoAction {
		return false
	}
	n.Action = a
	return true
}

// Neighbour is one passable cell adjacent to a queried position.
type Neighbour struct {
	Action Action
	Pos    Position
}

// Option configures a Grid at construction time.
type Option func(*gridConfig)

type gridConfig struct {
	cells map[Position]CellState
}

// WithCells seeds the initial cell states. Positions absent from the map stay
// Open. The map is copied; later mutation by the caller has no effect. New
// rejects positions off the board and states that are not Valid.
func WithCells(cells map[Position]CellState) Option {
	return func(c *gridConfig) {
		if c.cells == nil {
			c.cells = make(map[Position]CellState, len(cells))
		}
		for p, s := range cells {
			c.cells[p] = s
		}
	}
}
