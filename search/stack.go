package search

// Stack is a LIFO frontier. Driving GraphSearch with it yields
// depth-first search: no guarantee on path cost or length, but the
// explored set keeps it finite on finite state spaces, cycles included.
type Stack[S comparable, A any] struct {
	noReplace[S, A]
	items  []Node[S, A]
	states pending[S]
}

// NewStack returns an empty LIFO frontier.
func NewStack[S comparable, A any]() *Stack[S, A] {
	return &Stack[S, A]{states: make(pending[S])}
}

// Add pushes n.
func (s *Stack[S, A]) Add(n Node[S, A]) {
	s.items = append(s.items, n)
	s.states.inc(n.state)
}

// Remove pops the most recently added entry.
func (s *Stack[S, A]) Remove() (Node[S, A], error) {
	last := len(s.items) - 1
	if last < 0 {
		return Node[S, A]{}, ErrFrontierEmpty
	}
	n := s.items[last]
	s.items[last] = Node[S, A]{}
	s.items = s.items[:last]
	s.states.dec(n.state)

	return n, nil
}

// IsEmpty reports whether the stack holds no entries.
func (s *Stack[S, A]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of stacked entries.
func (s *Stack[S, A]) Len() int { return len(s.items) }

// Contains reports whether state is stacked.
func (s *Stack[S, A]) Contains(state S) bool {
	_, ok := s.states[state]
	return ok
}
