package roadmap

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyVertexID indicates an empty vertex identifier.
	ErrEmptyVertexID = errors.New("roadmap: vertex ID is empty")
	// ErrVertexNotFound indicates a reference to an unknown vertex.
	ErrVertexNotFound = errors.New("roadmap: vertex not found")
	// ErrLoopNotAllowed indicates a self-loop on a graph built without WithLoops.
	ErrLoopNotAllowed = errors.New("roadmap: self-loop not allowed")
	// ErrNegativeWeight indicates an edge weight below zero or NaN.
	ErrNegativeWeight = errors.New("roadmap: edge weight must be non-negative")
	// ErrNoGoal indicates a Problem with no goal vertices.
	ErrNoGoal = errors.New("roadmap: no goal vertex")
	// ErrNoPosition indicates StraightLine on a vertex without a position.
	ErrNoPosition = errors.New("roadmap: vertex has no position")
)

// Edge is one traversable direction of a road.
type Edge struct {
	From, To string
	Weight   float64
}

// String renders e as "from->to".
func (e Edge) String() string { return fmt.Sprintf("%s->%s", e.From, e.To) }

// Point is a planar vertex position.
type Point struct {
	X, Y float64
}

// GraphOption configures a Graph.
type GraphOption func(g *Graph)

// WithDirected makes AddEdge create one-way edges.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithLoops permits edges from a vertex to itself.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}
