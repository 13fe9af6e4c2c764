package roadmap

import (
	"fmt"
	"math"
	"slices"
)

// Graph is a weighted adjacency-list graph. It is not safe for concurrent
// mutation; a fully built Graph may be read concurrently.
type Graph struct {
	directed   bool
	allowLoops bool

	order     []string
	adjacency map[string][]Edge
	positions map[string]Point
}

// NewGraph returns an empty undirected Graph unless opts say otherwise.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]Edge),
		positions: make(map[string]Point),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports whether AddEdge creates one-way edges.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex adds id if absent.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
		g.order = append(g.order, id)
	}
	return nil
}

// Place adds id if absent and records its position.
func (g *Graph) Place(id string, p Point) error {
	if err := g.AddVertex(id); err != nil {
		return err
	}
	g.positions[id] = p
	return nil
}

// AddEdge connects from and to with weight, adding missing vertices. An
// undirected graph stores both directions.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("%w: %s->%s weight=%v", ErrNegativeWeight, from, to, weight)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight})
	}
	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Vertices returns vertex IDs in insertion order.
func (g *Graph) Vertices() []string { return slices.Clone(g.order) }

// Neighbors returns the outgoing edges of id in insertion order.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	edges, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	return edges, nil
}

// Position returns the recorded position of id.
func (g *Graph) Position(id string) (Point, bool) {
	p, ok := g.positions[id]
	return p, ok
}

// reversed returns a graph with every edge flipped.
func (g *Graph) reversed() *Graph {
	r := NewGraph(WithDirected(), WithLoops())
	for _, id := range g.order {
		_ = r.AddVertex(id)
	}
	for _, id := range g.order {
		for _, e := range g.adjacency[id] {
			_ = r.AddEdge(e.To, e.From, e.Weight)
		}
	}
	return r
}
