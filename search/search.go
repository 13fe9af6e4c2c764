package search

import (
	"fmt"
	"time"
)

// searcher encapsulates mutable state of one GraphSearch run.
type searcher[S comparable, A any] struct {
	problem  Problem[S, A]
	frontier Frontier[S, A]
	opts     Options
	tree     *Tree[S, A]
	explored map[S]struct{}
	res      Result[S, A]
}

// GraphSearch explores problem from its initial state using frontier's
// removal discipline until a goal node is removed or the frontier empties.
//
// Exhaustion is a normal outcome: the Result has Outcome == Exhausted and
// err == nil. A non-nil error means a contract violation (ErrFrontierEmpty,
// ErrInvalidAction), an aborting hook, ErrExpansionLimit or invalid input;
// the partial Result is still returned.
//
// Once a state is explored it is never reopened, even if a cheaper path to
// it appears later. AStar is therefore optimal only under a consistent
// heuristic.
func GraphSearch[S comparable, A any](problem Problem[S, A], frontier Frontier[S, A], opts ...Option) (Result[S, A], error) {
	if problem == nil {
		return Result[S, A]{}, ErrNilProblem
	}
	if frontier == nil {
		return Result[S, A]{}, ErrNilFrontier
	}
	if !frontier.IsEmpty() {
		return Result[S, A]{}, ErrFrontierInUse
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[S, A]{}, o.err
	}

	s := &searcher[S, A]{
		problem:  problem,
		frontier: frontier,
		opts:     o,
		tree:     NewTree[S, A](64),
		explored: make(map[S]struct{}),
	}

	start := time.Now()
	initial := problem.InitialState()
	o.Logger.Debug("search started", "frontier", fmt.Sprintf("%T", frontier), "initial", initial)

	err := s.loop(initial)
	o.Logger.Debug("search finished",
		"outcome", s.res.Outcome.String(),
		"expanded", s.res.Expanded,
		"generated", s.res.Generated,
		"path_len", len(s.res.Path),
		"cost", s.res.PathCost,
		"elapsed", time.Since(start),
		"error", err,
	)

	return s.res, err
}

// loop seeds the frontier and runs the expansion cycle.
func (s *searcher[S, A]) loop(initial S) error {
	s.enqueue(s.tree.Root(initial, s.problem.Heuristic(initial)))

	for !s.frontier.IsEmpty() {
		node, err := s.frontier.Remove()
		if err != nil {
			return fmt.Errorf("search: remove from non-empty frontier: %w", err)
		}

		if s.problem.GoalTest(node.state) {
			s.solve(node)
			return nil
		}

		if s.opts.MaxExpansions > 0 && s.res.Expanded >= s.opts.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, s.res.Expanded)
		}

		s.explored[node.state] = struct{}{}
		s.res.Expanded++
		if err = s.opts.OnExpand(node.event()); err != nil {
			return fmt.Errorf("search: OnExpand hook at %v: %w", node.state, err)
		}

		if err = s.expand(node); err != nil {
			return err
		}
		s.tree.Close(node.id)
	}

	s.res.Outcome = Exhausted
	return nil
}

// expand generates node's successors and offers each to the frontier.
// An explored successor is skipped; a pending one is replaced only if the
// frontier reports the child strictly cheaper, otherwise it is discarded.
func (s *searcher[S, A]) expand(node Node[S, A]) error {
	for _, action := range s.problem.Actions(node.state) {
		next, err := s.problem.Result(node.state, action)
		if err != nil {
			return fmt.Errorf("search: result of %v at %v: %w", action, node.state, err)
		}
		if _, seen := s.explored[next]; seen {
			continue
		}

		cost := s.problem.StepCost(node.state, action, next)
		child := s.tree.Grow(node, action, next, cost, s.problem.Heuristic(next))
		s.res.Generated++

		switch {
		case !s.frontier.Contains(next):
			s.enqueue(child)
		case s.frontier.CanReplace(child):
			old, ok := s.frontier.Replace(child)
			s.track()
			if ok {
				s.opts.OnReplace(old.event(), child.event())
				s.tree.Release(old.id)
			}
		default:
			s.tree.Release(child.id)
		}
	}
	return nil
}

// enqueue adds n to the frontier and fires OnEnqueue.
func (s *searcher[S, A]) enqueue(n Node[S, A]) {
	s.frontier.Add(n)
	s.track()
	s.opts.OnEnqueue(n.event())
}

func (s *searcher[S, A]) track() {
	if l := s.frontier.Len(); l > s.res.MaxFrontier {
		s.res.MaxFrontier = l
	}
}

// solve records goal as the solution and reconstructs its path.
func (s *searcher[S, A]) solve(goal Node[S, A]) {
	s.res.Outcome = Solved
	s.res.Solution = goal
	s.res.PathCost = goal.pathCost
	s.res.Path = s.tree.States(goal.id)
	s.res.Actions = s.tree.Actions(goal.id)
}
