package search

import "slices"

// NodeID addresses a Node inside its Tree.
type NodeID int

// NoParent is the predecessor of a root node.
const NoParent NodeID = -1

// Node is an immutable record of one reached state and its link to the
// predecessor it was generated from. Nodes are built only by a Tree.
//
// Two nodes are interchangeable for deduplication when their states are
// equal; frontiers and the explored set key on State alone.
type Node[S comparable, A any] struct {
	id        NodeID
	parent    NodeID
	state     S
	action    A
	pathCost  float64
	heuristic float64
	depth     int
}

// ID returns the node's address in its Tree.
func (n Node[S, A]) ID() NodeID { return n.id }

// Parent returns the predecessor's ID, or NoParent for the root.
func (n Node[S, A]) Parent() NodeID { return n.parent }

// IsRoot reports whether n has no predecessor.
func (n Node[S, A]) IsRoot() bool { return n.parent == NoParent }

// State returns the state n represents.
func (n Node[S, A]) State() S { return n.state }

// Action returns the action taken from the predecessor. Zero for the root.
func (n Node[S, A]) Action() A { return n.action }

// PathCost returns g, the accumulated cost from the initial state.
func (n Node[S, A]) PathCost() float64 { return n.pathCost }

// Heuristic returns h, the estimated remaining cost.
func (n Node[S, A]) Heuristic() float64 { return n.heuristic }

// Total returns f = g + h.
func (n Node[S, A]) Total() float64 { return n.pathCost + n.heuristic }

// Depth returns the number of transitions from the root.
func (n Node[S, A]) Depth() int { return n.depth }

func (n Node[S, A]) event() Event {
	return Event{
		ID:        n.id,
		Parent:    n.parent,
		State:     n.state,
		Depth:     n.depth,
		PathCost:  n.pathCost,
		Heuristic: n.heuristic,
		Total:     n.Total(),
	}
}

// slot is one arena cell. children counts live nodes whose parent is this
// slot; closed marks a node whose successors have been generated.
type slot[S comparable, A any] struct {
	node     Node[S, A]
	children int
	closed   bool
	live     bool
}

// Tree is an arena of Nodes addressed by NodeID. Predecessor links are
// indices into the arena, so chains are acyclic and only grow forward
// from the root. Released slots are recycled through a free list.
type Tree[S comparable, A any] struct {
	slots []slot[S, A]
	free  []NodeID
	live  int
}

// NewTree returns an empty arena with room for capacity nodes.
func NewTree[S comparable, A any](capacity int) *Tree[S, A] {
	if capacity < 0 {
		capacity = 0
	}
	return &Tree[S, A]{slots: make([]slot[S, A], 0, capacity)}
}

// Root builds a depth-0 node for state with g = 0 and the given h.
func (t *Tree[S, A]) Root(state S, heuristic float64) Node[S, A] {
	var zero A
	return t.alloc(Node[S, A]{
		parent:    NoParent,
		state:     state,
		action:    zero,
		pathCost:  0,
		heuristic: heuristic,
		depth:     0,
	})
}

// Grow builds a child of parent reached by action, with g = parent.g + stepCost.
// parent must be live in t.
func (t *Tree[S, A]) Grow(parent Node[S, A], action A, state S, stepCost, heuristic float64) Node[S, A] {
	t.slots[parent.id].children++
	return t.alloc(Node[S, A]{
		parent:    parent.id,
		state:     state,
		action:    action,
		pathCost:  parent.pathCost + stepCost,
		heuristic: heuristic,
		depth:     parent.depth + 1,
	})
}

func (t *Tree[S, A]) alloc(n Node[S, A]) Node[S, A] {
	if k := len(t.free); k > 0 {
		n.id = t.free[k-1]
		t.free = t.free[:k-1]
		t.slots[n.id] = slot[S, A]{node: n, live: true}
	} else {
		n.id = NodeID(len(t.slots))
		t.slots = append(t.slots, slot[S, A]{node: n, live: true})
	}
	t.live++

	return n
}

// Get returns the live node stored at id.
func (t *Tree[S, A]) Get(id NodeID) (Node[S, A], bool) {
	if id < 0 || int(id) >= len(t.slots) || !t.slots[id].live {
		return Node[S, A]{}, false
	}
	return t.slots[id].node, true
}

// Len returns the number of live nodes.
func (t *Tree[S, A]) Len() int { return t.live }

// Close marks id as expanded. A closed node with no live children is
// unreachable from any pending node and is released immediately.
func (t *Tree[S, A]) Close(id NodeID) {
	if _, ok := t.Get(id); !ok {
		return
	}
	t.slots[id].closed = true
	if t.slots[id].children == 0 {
		t.Release(id)
	}
}

// Release frees id if no live node names it as predecessor, and reports
// whether it did. Releasing the last child of a closed predecessor frees
// that predecessor too, walking up the chain.
func (t *Tree[S, A]) Release(id NodeID) bool {
	n, ok := t.Get(id)
	if !ok || t.slots[id].children > 0 {
		return false
	}
	for {
		t.slots[id] = slot[S, A]{}
		t.free = append(t.free, id)
		t.live--

		if n.parent == NoParent {
			return true
		}
		p := &t.slots[n.parent]
		p.children--
		if p.children > 0 || !p.closed {
			return true
		}
		id, n = n.parent, p.node
	}
}

// Path walks the predecessor chain from id back to the root and returns
// the nodes in root-first order. It returns nil if id is not live.
func (t *Tree[S, A]) Path(id NodeID) []Node[S, A] {
	n, ok := t.Get(id)
	if !ok {
		return nil
	}
	path := make([]Node[S, A], 0, n.depth+1)
	for {
		path = append(path, n)
		if n.parent == NoParent {
			break
		}
		n = t.slots[n.parent].node
	}
	slices.Reverse(path)

	return path
}

// States returns the state sequence from the initial state to id.
func (t *Tree[S, A]) States(id NodeID) []S {
	nodes := t.Path(id)
	if nodes == nil {
		return nil
	}
	states := make([]S, len(nodes))
	for i, n := range nodes {
		states[i] = n.state
	}
	return states
}

// Actions returns the actions taken along the path to id, excluding the
// root's empty action.
func (t *Tree[S, A]) Actions(id NodeID) []A {
	nodes := t.Path(id)
	if len(nodes) == 0 {
		return nil
	}
	actions := make([]A, 0, len(nodes)-1)
	for _, n := range nodes[1:] {
		actions = append(actions, n.action)
	}
	return actions
}
