// Package maze defines coordinates, moves, tile types, options and sentinel
// errors for grid navigation problems.
package maze

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for maze construction and queries.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrUnknownTile indicates a character or value with no tile mapping.
	ErrUnknownTile = errors.New("maze: unknown tile")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
	// ErrNoStart indicates the grid holds no start tile.
	ErrNoStart = errors.New("maze: no start position")
	// ErrNoGoal indicates the grid or problem has no goal positions.
	ErrNoGoal = errors.New("maze: no goal position")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Coord is a (row, column) cell position.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Add returns c shifted by m.
func (c Coord) Add(m Move) Coord { return Coord{Row: c.Row + m.DRow, Col: c.Col + m.DCol} }

// Move is a one-cell displacement.
type Move struct {
	DRow, DCol int
}

// Diagonal reports whether m changes both row and column.
func (m Move) Diagonal() bool { return m.DRow != 0 && m.DCol != 0 }

// String names the compass direction of m.
func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	}
	return fmt.Sprintf("move(%d,%d)", m.DRow, m.DCol)
}

// The eight unit moves.
var (
	Up        = Move{-1, 0}
	Down      = Move{1, 0}
	Left      = Move{0, -1}
	Right     = Move{0, 1}
	UpLeft    = Move{-1, -1}
	UpRight   = Move{-1, 1}
	DownLeft  = Move{1, -1}
	DownRight = Move{1, 1}
)

// Connectivity selects the neighbor set: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional movement (default).
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional movement: up, down, left, right.
	Conn4
)

// moves returns the neighbor offsets for c, axis moves first.
func (c Connectivity) moves() []Move {
	if c == Conn4 {
		return []Move{Up, Down, Left, Right}
	}
	return []Move{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}
}

// ParseConnectivity maps "4" or "8" to a Connectivity. Empty means Conn8.
func ParseConnectivity(name string) (Connectivity, error) {
	switch name {
	case "", "8":
		return Conn8, nil
	case "4":
		return Conn4, nil
	}
	return 0, fmt.Errorf("%w: connectivity %q", ErrOptionViolation, name)
}

// TileType classifies a grid cell.
type TileType int

const (
	// Free is an open cell.
	Free TileType = iota
	// Wall is an obstacle.
	Wall
	// Start marks the initial position; walkable.
	Start
	// Goal marks a target position; walkable.
	Goal
)

// String returns the upper-case tile name.
func (t TileType) String() string {
	switch t {
	case Free:
		return "FREE"
	case Wall:
		return "WALL"
	case Start:
		return "START"
	case Goal:
		return "GOAL"
	}
	return "UNKNOWN"
}

// Walkable reports whether a cell of type t can be entered.
func (t TileType) Walkable() bool { return t != Wall }

// Default step costs.
const (
	DefaultAxisCost     = 1.0
	DefaultDiagonalCost = 1.414
)

// Heuristic estimates the remaining cost between two cells.
type Heuristic func(from, to Coord) float64

// Euclidean is the straight-line distance. It is consistent for Conn4 and
// for Conn8 with a diagonal cost of at least math.Sqrt2; DefaultDiagonalCost
// (1.414) undercuts √2, so each diagonal step may be overestimated by ~2e-4.
func Euclidean(from, to Coord) float64 {
	return math.Hypot(float64(from.Row-to.Row), float64(from.Col-to.Col))
}

// Manhattan is |dr| + |dc|. Admissible only for Conn4 with unit axis cost.
func Manhattan(from, to Coord) float64 {
	return math.Abs(float64(from.Row-to.Row)) + math.Abs(float64(from.Col-to.Col))
}

// Octile is the exact unobstructed cost under Conn8 with DefaultAxisCost
// and DefaultDiagonalCost.
func Octile(from, to Coord) float64 {
	dr := math.Abs(float64(from.Row - to.Row))
	dc := math.Abs(float64(from.Col - to.Col))
	lo, hi := math.Min(dr, dc), math.Max(dr, dc)
	return DefaultAxisCost*(hi-lo) + DefaultDiagonalCost*lo
}

// Zero always returns 0; A* then behaves like uniform-cost search.
func Zero(Coord, Coord) float64 { return 0 }

// Option configures a Problem via functional arguments.
type Option func(*Options)

// Options holds movement and cost parameters of a Problem.
type Options struct {
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity
	// AxisCost is the cost of an up, down, left or right move.
	AxisCost float64
	// DiagonalCost is the cost of a diagonal move.
	DiagonalCost float64
	// Heuristic estimates the cost between a cell and one goal; the
	// Problem takes the minimum over goals.
	Heuristic Heuristic

	err error
}

// DefaultOptions returns Conn8, unit axis cost, 1.414 diagonal cost and the
// Euclidean heuristic.
func DefaultOptions() Options {
	return Options{
		Conn:         Conn8,
		AxisCost:     DefaultAxisCost,
		DiagonalCost: DefaultDiagonalCost,
		Heuristic:    Euclidean,
	}
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Conn = c
	}
}

// WithCosts sets the axis and diagonal step costs. Both must be
// non-negative.
func WithCosts(axis, diagonal float64) Option {
	return func(o *Options) {
		if axis < 0 || diagonal < 0 || math.IsNaN(axis) || math.IsNaN(diagonal) {
			o.err = fmt.Errorf("%w: costs must be non-negative (axis=%v, diagonal=%v)", ErrOptionViolation, axis, diagonal)
			return
		}
		o.AxisCost, o.DiagonalCost = axis, diagonal
	}
}

// WithHeuristic replaces the per-goal estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// ParseHeuristic maps euclidean, manhattan, octile or zero to a Heuristic.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "", "euclidean":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	case "octile":
		return Octile, nil
	case "zero", "none":
		return Zero, nil
	}
	return nil, fmt.Errorf("%w: heuristic %q", ErrOptionViolation, name)
}
