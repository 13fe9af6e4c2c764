package search

// compactThreshold is the head offset past which Queue reclaims the
// consumed prefix of its backing slice.
const compactThreshold = 64

// Queue is a FIFO frontier. Driving GraphSearch with it yields
// breadth-first search: nodes are expanded in non-decreasing depth, so
// with uniform step cost the first goal removed has the fewest transitions.
type Queue[S comparable, A any] struct {
	noReplace[S, A]
	items  []Node[S, A]
	head   int
	states pending[S]
}

// NewQueue returns an empty FIFO frontier.
func NewQueue[S comparable, A any]() *Queue[S, A] {
	return &Queue[S, A]{states: make(pending[S])}
}

// Add appends n.
func (q *Queue[S, A]) Add(n Node[S, A]) {
	q.items = append(q.items, n)
	q.states.inc(n.state)
}

// Remove pops the oldest entry.
func (q *Queue[S, A]) Remove() (Node[S, A], error) {
	if q.head >= len(q.items) {
		return Node[S, A]{}, ErrFrontierEmpty
	}
	n := q.items[q.head]
	q.items[q.head] = Node[S, A]{}
	q.head++
	q.states.dec(n.state)

	if q.head >= compactThreshold && q.head*2 >= len(q.items) {
		k := copy(q.items, q.items[q.head:])
		clear(q.items[k:])
		q.items = q.items[:k]
		q.head = 0
	}

	return n, nil
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[S, A]) IsEmpty() bool { return q.head >= len(q.items) }

// Len returns the number of queued entries.
func (q *Queue[S, A]) Len() int { return len(q.items) - q.head }

// Contains reports whether state is queued.
func (q *Queue[S, A]) Contains(state S) bool {
	_, ok := q.states[state]
	return ok
}
