package search

import "container/heap"

// pqEntry is one heap record. seq is the insertion sequence number: it
// breaks ties on total (earlier wins) and identifies the entry in the
// liveness index.
type pqEntry[S comparable, A any] struct {
	total float64
	seq   uint64
	node  Node[S, A]
}

// pqHeap is a min-heap of pqEntry ordered by (total, seq).
type pqHeap[S comparable, A any] []pqEntry[S, A]

func (h pqHeap[S, A]) Len() int { return len(h) }

func (h pqHeap[S, A]) Less(i, j int) bool {
	if h[i].total != h[j].total {
		return h[i].total < h[j].total
	}
	return h[i].seq < h[j].seq
}

func (h pqHeap[S, A]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pqHeap[S, A]) Push(x any) { *h = append(*h, x.(pqEntry[S, A])) }

func (h *pqHeap[S, A]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = pqEntry[S, A]{}
	*h = old[:n-1]

	return e
}

// PriorityQueue is a best-first frontier ordered by ascending f = g + h,
// ties broken by insertion order. Driving GraphSearch with it yields A*.
//
// Replacement uses lazy deletion: Replace only moves the state's liveness
// record to the new entry and pushes it; the superseded heap entry stays
// in place and is discarded when it surfaces in Remove. Each state has at
// most one live entry at a time.
type PriorityQueue[S comparable, A any] struct {
	heap pqHeap[S, A]
	live map[S]pqEntry[S, A]
	seq  uint64
}

// NewPriorityQueue returns an empty priority frontier.
func NewPriorityQueue[S comparable, A any]() *PriorityQueue[S, A] {
	return &PriorityQueue[S, A]{live: make(map[S]pqEntry[S, A])}
}

// Add pushes n and records it as the live entry for its state.
func (pq *PriorityQueue[S, A]) Add(n Node[S, A]) {
	e := pqEntry[S, A]{total: n.Total(), seq: pq.seq, node: n}
	pq.seq++
	heap.Push(&pq.heap, e)
	pq.live[n.state] = e
}

// Remove pops entries until one is live for its state.
func (pq *PriorityQueue[S, A]) Remove() (Node[S, A], error) {
	for pq.heap.Len() > 0 {
		e := heap.Pop(&pq.heap).(pqEntry[S, A])
		cur, ok := pq.live[e.node.state]
		if !ok || cur.seq != e.seq {
			// stale: superseded by a cheaper entry
			continue
		}
		delete(pq.live, e.node.state)
		return e.node, nil
	}
	return Node[S, A]{}, ErrFrontierEmpty
}

// IsEmpty reports whether no live entry remains. Stale heap entries may
// still be present.
func (pq *PriorityQueue[S, A]) IsEmpty() bool { return len(pq.live) == 0 }

// Len returns the number of live entries.
func (pq *PriorityQueue[S, A]) Len() int { return len(pq.live) }

// Stale returns the number of superseded entries awaiting lazy removal.
func (pq *PriorityQueue[S, A]) Stale() int { return pq.heap.Len() - len(pq.live) }

// Contains reports whether state has a live entry.
func (pq *PriorityQueue[S, A]) Contains(state S) bool {
	_, ok := pq.live[state]
	return ok
}

// CanReplace reports whether n's state is live with a strictly higher f.
func (pq *PriorityQueue[S, A]) CanReplace(n Node[S, A]) bool {
	cur, ok := pq.live[n.state]
	return ok && n.Total() < cur.total
}

// Replace drops the liveness record of n's state and adds n. The old heap
// entry is left for Remove to discard.
func (pq *PriorityQueue[S, A]) Replace(n Node[S, A]) (Node[S, A], bool) {
	old, ok := pq.live[n.state]
	delete(pq.live, n.state)
	pq.Add(n)

	return old.node, ok
}
