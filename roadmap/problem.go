package roadmap

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvsearch/search"
)

// Option configures a Problem.
type Option func(*Options)

// Options holds the heuristic of a Problem.
type Options struct {
	// Heuristic estimates the remaining cost from a vertex. Nil means zero.
	Heuristic func(v string) float64

	straightLine bool
}

// DefaultOptions returns the zero heuristic.
func DefaultOptions() Options { return Options{} }

// WithHeuristic sets a custom estimate.
func WithHeuristic(h func(v string) float64) Option {
	return func(o *Options) {
		o.Heuristic, o.straightLine = h, false
	}
}

// WithStraightLine estimates by Euclidean distance to the nearest goal
// position. Every vertex must have a position.
func WithStraightLine() Option {
	return func(o *Options) {
		o.Heuristic, o.straightLine = nil, true
	}
}

// Problem implements search.Problem[string, Edge] over a Graph.
type Problem struct {
	graph *Graph
	start string
	goals search.Goals[string]
	h     func(string) float64
}

var _ search.Problem[string, Edge] = (*Problem)(nil)

// NewProblem routes from start to any of goals across g.
func NewProblem(g *Graph, start string, goals []string, opts ...Option) (*Problem, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}
	for _, id := range goals {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: goal %q", ErrVertexNotFound, id)
		}
	}

	p := &Problem{graph: g, start: start, goals: search.NewGoals(goals...), h: o.Heuristic}
	if o.straightLine {
		h, err := straightLine(g, goals)
		if err != nil {
			return nil, err
		}
		p.h = h
	}
	return p, nil
}

func straightLine(g *Graph, goals []string) (func(string) float64, error) {
	targets := make([]Point, 0, len(goals))
	for _, id := range goals {
		pt, ok := g.Position(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoPosition, id)
		}
		targets = append(targets, pt)
	}
	for _, id := range g.order {
		if _, ok := g.Position(id); !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoPosition, id)
		}
	}
	return func(v string) float64 {
		from := g.positions[v]
		best := math.Inf(1)
		for _, t := range targets {
			best = min(best, math.Hypot(t.X-from.X, t.Y-from.Y))
		}
		return best
	}, nil
}

// InitialState returns the start vertex.
func (p *Problem) InitialState() string { return p.start }

// Actions returns the outgoing edges of v.
func (p *Problem) Actions(v string) []Edge {
	edges, _ := p.graph.Neighbors(v)
	return edges
}

// Result follows edge from v. It fails with search.ErrInvalidAction if
// edge does not leave v or is not part of the graph.
func (p *Problem) Result(v string, edge Edge) (string, error) {
	if edge.From != v {
		return v, fmt.Errorf("%w: %v does not leave %q", search.ErrInvalidAction, edge, v)
	}
	edges, err := p.graph.Neighbors(v)
	if err != nil || !slices.Contains(edges, edge) {
		return v, fmt.Errorf("%w: %v is not in the graph", search.ErrInvalidAction, edge)
	}
	return edge.To, nil
}

// StepCost returns the edge weight.
func (p *Problem) StepCost(_ string, edge Edge, _ string) float64 { return edge.Weight }

// GoalTest reports whether v is a goal.
func (p *Problem) GoalTest(v string) bool { return p.goals.Contains(v) }

// Heuristic returns the configured estimate, or zero.
func (p *Problem) Heuristic(v string) float64 {
	if p.h == nil {
		return 0
	}
	return p.h(v)
}
