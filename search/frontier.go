package search

// Frontier holds discovered but not yet expanded nodes.
//
// Implementations differ in removal order and in how they treat a node
// whose state is already pending:
//   - Queue: FIFO, never replaces (breadth-first).
//   - Stack: LIFO, never replaces (depth-first).
//   - PriorityQueue: lowest f first, replaces a pending node with a
//     strictly cheaper one (A*).
type Frontier[S comparable, A any] interface {
	// Add inserts n and records it as the pending node for its state.
	Add(n Node[S, A])

	// Remove pops the next live node, or fails with ErrFrontierEmpty.
	Remove() (Node[S, A], error)

	// IsEmpty reports whether no live entry remains.
	IsEmpty() bool

	// Len returns the number of live entries.
	Len() int

	// Contains reports whether a node for state is pending.
	Contains(state S) bool

	// CanReplace reports whether n should supersede the pending node
	// for its state.
	CanReplace(n Node[S, A]) bool

	// Replace supersedes the pending node for n's state with n and
	// returns the displaced node, if any.
	Replace(n Node[S, A]) (Node[S, A], bool)
}

// noReplace supplies the default replacement policy: never.
type noReplace[S comparable, A any] struct{}

// CanReplace always returns false.
func (noReplace[S, A]) CanReplace(Node[S, A]) bool { return false }

// Replace is a no-op.
func (noReplace[S, A]) Replace(Node[S, A]) (Node[S, A], bool) { return Node[S, A]{}, false }

// pending counts queued entries per state, so duplicate Adds through the
// raw primitive keep Contains accurate.
type pending[S comparable] map[S]int

func (p pending[S]) inc(s S) { p[s]++ }

func (p pending[S]) dec(s S) {
	if p[s] <= 1 {
		delete(p, s)
		return
	}
	p[s]--
}
