package search

// Problem describes a state space. Every method is a pure query: the
// driver may call them in any order and any number of times.
//
// Preconditions the driver relies on but does not check:
//   - StepCost is non-negative.
//   - For AStar to return an optimal path, Heuristic is admissible (never
//     overestimates) and consistent (h(s) <= cost(s,a,s') + h(s')). The
//     driver never reopens an explored state, so an inconsistent heuristic
//     silently yields a suboptimal path rather than an error.
type Problem[S comparable, A any] interface {
	// InitialState returns the state the search starts from.
	InitialState() S

	// Actions returns every transition legal from state, in a
	// deterministic order. The slice must be finite.
	Actions(state S) []A

	// Result returns the state reached by applying action to state.
	// An action not produced by Actions(state) must yield an error
	// wrapping ErrInvalidAction.
	Result(state S, action A) (S, error)

	// StepCost returns the non-negative cost of one transition.
	StepCost(state S, action A, next S) float64

	// GoalTest reports whether state belongs to the goal set.
	GoalTest(state S) bool

	// Heuristic returns a non-negative estimate of the remaining cost
	// from state to the nearest goal.
	Heuristic(state S) float64
}

// Goals is a set of goal states usable as a Problem's goal test.
type Goals[S comparable] map[S]struct{}

// NewGoals returns the set of the given states.
func NewGoals[S comparable](states ...S) Goals[S] {
	g := make(Goals[S], len(states))
	for _, s := range states {
		g[s] = struct{}{}
	}
	return g
}

// Contains reports whether s is a goal.
func (g Goals[S]) Contains(s S) bool {
	_, ok := g[s]
	return ok
}
