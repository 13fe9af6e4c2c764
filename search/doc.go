// Package search provides a generic best-first graph search engine over an
// abstract state space, with pluggable exploration order.
//
// What
//
//   - Problem[S, A]: the state-space contract (InitialState, Actions, Result,
//     StepCost, GoalTest, Heuristic). S must be comparable so it can key the
//     explored set and frontier indexes.
//   - Node[S, A]: immutable record {state, parent, action, g, h, depth},
//     stored in a Tree arena and linked to its predecessor by NodeID.
//   - Frontier[S, A]: pending nodes, in three disciplines:
//   - Queue          FIFO → breadth-first search
//   - Stack          LIFO → depth-first search
//   - PriorityQueue  min f = g + h, ties by insertion → A*
//   - GraphSearch: the single driver loop shared by every strategy.
//   - Result[S, A]: outcome, solution path, path cost and statistics.
//
// Why
//
//   - One loop, three guarantees: BFS finds the fewest transitions under
//     uniform cost, A* the minimum cost under an admissible and consistent
//     heuristic, DFS terminates on any finite graph (cycles included)
//     thanks to the explored set.
//
// Algorithm
//
//  1. Seed the frontier with the root (g = 0, h = Heuristic(initial)).
//  2. While the frontier has live entries, remove one.
//  3. If it passes GoalTest, return Solved.
//  4. Mark it explored and generate its successors; skip explored states.
//  5. Add a successor whose state is not pending; replace a pending one if
//     the frontier reports it strictly cheaper; discard it otherwise.
//  6. An empty frontier returns Exhausted.
//
// Explored states are never reopened. Under an inconsistent heuristic A*
// then returns a valid but possibly suboptimal path, without an error.
//
// Lazy deletion
//
//	PriorityQueue.Replace does not reorder the heap. It moves the state's
//	liveness record to a freshly pushed entry; the superseded entry is
//	discarded when Remove pops it. Superseded nodes are released from the
//	Tree immediately, and an expanded node is released as soon as none of
//	its descendants is still alive.
//
// Complexity (N = generated nodes, b = branching factor)
//
//   - Queue/Stack:   O(1) per Add/Remove.
//   - PriorityQueue: O(log N) per Add/Remove, O(1) CanReplace/Contains.
//   - Memory:        O(N) heap entries worst case, O(live) tree nodes.
//
// Usage
//
//	res, err := search.AStar[maze.Coord, maze.Move](problem,
//	    search.WithLogger(logger),
//	    search.WithMaxExpansions(10_000),
//	    search.WithOnExpand(func(ev search.Event) error { return nil }),
//	)
//	if err != nil {
//	    // ErrNilProblem, ErrFrontierEmpty, ErrInvalidAction,
//	    // ErrExpansionLimit, ErrOptionViolation or a hook error
//	}
//	if res.Found() {
//	    fmt.Println(res.Path, res.PathCost, res.Expanded)
//	}
//
// Errors
//
//   - ErrNilProblem, ErrNilFrontier, ErrFrontierInUse  invalid input.
//   - ErrFrontierEmpty   Remove on an empty frontier.
//   - ErrInvalidAction   wrapped by Problem.Result for an illegal action.
//   - ErrExpansionLimit  WithMaxExpansions bound hit.
//   - ErrOptionViolation invalid Option.
//   - ErrUnknownStrategy ParseStrategy / NewFrontier with an unknown value.
package search
