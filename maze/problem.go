package maze

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// Problem implements search.Problem[Coord, Move] over a Walkability oracle.
// It is immutable once built.
type Problem struct {
	oracle Walkability
	start  Coord
	goals  []Coord
	goalX  search.Goals[Coord]
	moves  []Move
	opts   Options
}

var _ search.Problem[Coord, Move] = (*Problem)(nil)

// NewProblem builds a Problem that navigates oracle from start to any of
// goals. Returns ErrNoGoal if goals is empty or ErrOptionViolation for an
// invalid Option.
func NewProblem(oracle Walkability, start Coord, goals []Coord, opts ...Option) (*Problem, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}
	gs := make([]Coord, len(goals))
	copy(gs, goals)

	return &Problem{
		oracle: oracle,
		start:  start,
		goals:  gs,
		goalX:  search.NewGoals(gs...),
		moves:  o.Conn.moves(),
		opts:   o,
	}, nil
}

// FromGrid builds a Problem from the Start and Goal tiles of g.
func FromGrid(g *Grid, opts ...Option) (*Problem, error) {
	start, err := g.Start()
	if err != nil {
		return nil, err
	}
	return NewProblem(g, start, g.Goals(), opts...)
}

// InitialState returns the start cell.
func (p *Problem) InitialState() Coord { return p.start }

// GoalCells returns a copy of the goal cells.
func (p *Problem) GoalCells() []Coord {
	out := make([]Coord, len(p.goals))
	copy(out, p.goals)
	return out
}

// Actions returns the moves from state that land on a walkable cell, in
// the order up, down, left, right, then (Conn8) up-left, up-right,
// down-left, down-right.
func (p *Problem) Actions(state Coord) []Move {
	valid := make([]Move, 0, len(p.moves))
	for _, m := range p.moves {
		if p.oracle.Walkable(state.Add(m)) {
			valid = append(valid, m)
		}
	}
	return valid
}

// Result applies action to state. It fails with search.ErrInvalidAction if
// action is not one of the problem's moves or lands on an unwalkable cell.
func (p *Problem) Result(state Coord, action Move) (Coord, error) {
	if !p.allowed(action) {
		return state, fmt.Errorf("%w: %v is not a %s move", search.ErrInvalidAction, action, p.connName())
	}
	next := state.Add(action)
	if !p.oracle.Walkable(next) {
		return state, fmt.Errorf("%w: %v from %v lands on blocked cell %v", search.ErrInvalidAction, action, state, next)
	}
	return next, nil
}

// StepCost returns DiagonalCost for diagonal moves and AxisCost otherwise.
func (p *Problem) StepCost(_ Coord, action Move, _ Coord) float64 {
	if action.Diagonal() {
		return p.opts.DiagonalCost
	}
	return p.opts.AxisCost
}

// GoalTest reports whether state is a goal cell.
func (p *Problem) GoalTest(state Coord) bool { return p.goalX.Contains(state) }

// Heuristic returns the minimum estimate from state to any goal.
func (p *Problem) Heuristic(state Coord) float64 {
	best := math.Inf(1)
	for _, g := range p.goals {
		if d := p.opts.Heuristic(state, g); d < best {
			best = d
		}
	}
	return best
}

func (p *Problem) allowed(m Move) bool {
	for _, mv := range p.moves {
		if mv == m {
			return true
		}
	}
	return false
}

func (p *Problem) connName() string {
	if p.opts.Conn == Conn4 {
		return "4-connected"
	}
	return "8-connected"
}
