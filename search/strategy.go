package search

import (
	"fmt"
	"strings"
)

// Strategy selects a frontier discipline.
type Strategy int

const (
	// StrategyBFS uses a Queue (breadth-first).
	StrategyBFS Strategy = iota
	// StrategyDFS uses a Stack (depth-first).
	StrategyDFS
	// StrategyAStar uses a PriorityQueue ordered by f = g + h.
	StrategyAStar
)

// Strategies lists every supported strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{StrategyBFS, StrategyDFS, StrategyAStar}
}

// String returns the short name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyBFS:
		return "bfs"
	case StrategyDFS:
		return "dfs"
	case StrategyAStar:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name (case-insensitive) to a Strategy.
// Accepted: bfs, dfs, astar, a*.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return StrategyBFS, nil
	case "dfs", "depth-first":
		return StrategyDFS, nil
	case "astar", "a*", "a-star":
		return StrategyAStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// NewFrontier returns an empty frontier implementing s.
func NewFrontier[S comparable, A any](s Strategy) (Frontier[S, A], error) {
	switch s {
	case StrategyBFS:
		return NewQueue[S, A](), nil
	case StrategyDFS:
		return NewStack[S, A](), nil
	case StrategyAStar:
		return NewPriorityQueue[S, A](), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
}

// Run executes GraphSearch with a fresh frontier for strategy.
func Run[S comparable, A any](problem Problem[S, A], strategy Strategy, opts ...Option) (Result[S, A], error) {
	frontier, err := NewFrontier[S, A](strategy)
	if err != nil {
		return Result[S, A]{}, err
	}
	return GraphSearch(problem, frontier, opts...)
}

// BFS runs breadth-first search: minimum transition count to a goal.
func BFS[S comparable, A any](problem Problem[S, A], opts ...Option) (Result[S, A], error) {
	return GraphSearch[S, A](problem, NewQueue[S, A](), opts...)
}

// DFS runs depth-first search: some path to a goal, no optimality.
func DFS[S comparable, A any](problem Problem[S, A], opts ...Option) (Result[S, A], error) {
	return GraphSearch[S, A](problem, NewStack[S, A](), opts...)
}

// AStar runs A*: minimum path cost under an admissible, consistent heuristic.
func AStar[S comparable, A any](problem Problem[S, A], opts ...Option) (Result[S, A], error) {
	return GraphSearch[S, A](problem, NewPriorityQueue[S, A](), opts...)
}
