package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

// fixture grows nodes of chosen g and h under a shared root.
type fixture struct {
	tree *search.Tree[string, string]
	root search.Node[string, string]
}

func newFixture() *fixture {
	tree := search.NewTree[string, string](0)
	return &fixture{tree: tree, root: tree.Root("root", 0)}
}

func (f *fixture) node(state string, g, h float64) search.Node[string, string] {
	return f.tree.Grow(f.root, "", state, g, h)
}

// drain removes every live node and returns their states in order.
func drain(t *testing.T, fr search.Frontier[string, string]) []string {
	t.Helper()
	var out []string
	for !fr.IsEmpty() {
		n, err := fr.Remove()
		require.NoError(t, err)
		out = append(out, n.State())
	}
	return out
}

func TestFrontier_RemoveEmpty(t *testing.T) {
	for _, s := range search.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			fr, err := search.NewFrontier[string, string](s)
			require.NoError(t, err)
			assert.True(t, fr.IsEmpty())
			assert.Equal(t, 0, fr.Len())
			_, err = fr.Remove()
			assert.ErrorIs(t, err, search.ErrFrontierEmpty)
		})
	}
}

func TestQueue_FIFO(t *testing.T) {
	f := newFixture()
	q := search.NewQueue[string, string]()
	for _, s := range []string{"a", "b", "c"} {
		q.Add(f.node(s, 1, 0))
	}
	assert.True(t, q.Contains("b"))
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []string{"a", "b", "c"}, drain(t, q))
	assert.False(t, q.Contains("b"))
}

func TestQueue_CompactsLongRuns(t *testing.T) {
	f := newFixture()
	q := search.NewQueue[string, string]()
	want := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		s := string(rune('A' + i%26))
		q.Add(f.node(s, 1, 0))
		want = append(want, s)
		if i%3 == 2 {
			n, err := q.Remove()
			require.NoError(t, err)
			assert.Equal(t, want[0], n.State())
			want = want[1:]
		}
	}
	assert.Equal(t, want, drain(t, q))
}

func TestQueue_DuplicateAddKeepsContains(t *testing.T) {
	f := newFixture()
	q := search.NewQueue[string, string]()
	q.Add(f.node("a", 1, 0))
	q.Add(f.node("a", 2, 0))
	_, err := q.Remove()
	require.NoError(t, err)
	assert.True(t, q.Contains("a"), "second copy still queued")
}

func TestStack_LIFO(t *testing.T) {
	f := newFixture()
	s := search.NewStack[string, string]()
	for _, st := range []string{"a", "b", "c"} {
		s.Add(f.node(st, 1, 0))
	}
	assert.True(t, s.Contains("a"))
	assert.Equal(t, []string{"c", "b", "a"}, drain(t, s))
}

func TestQueueAndStack_NeverReplace(t *testing.T) {
	f := newFixture()
	for _, fr := range []search.Frontier[string, string]{
		search.NewQueue[string, string](),
		search.NewStack[string, string](),
	} {
		fr.Add(f.node("a", 10, 0))
		cheaper := f.node("a", 1, 0)
		assert.False(t, fr.CanReplace(cheaper))
		_, replaced := fr.Replace(cheaper)
		assert.False(t, replaced)
		assert.Equal(t, 1, fr.Len())
		n, err := fr.Remove()
		require.NoError(t, err)
		assert.Equal(t, 10.0, n.PathCost())
	}
}

func TestPriorityQueue_OrdersByTotal(t *testing.T) {
	f := newFixture()
	pq := search.NewPriorityQueue[string, string]()
	pq.Add(f.node("c", 3, 0))
	pq.Add(f.node("a", 0.5, 0.5))
	pq.Add(f.node("b", 1, 1))
	assert.Equal(t, []string{"a", "b", "c"}, drain(t, pq))
}

func TestPriorityQueue_TiesFavorEarlierInsertion(t *testing.T) {
	f := newFixture()
	pq := search.NewPriorityQueue[string, string]()
	pq.Add(f.node("first", 1, 1))
	pq.Add(f.node("second", 2, 0))
	pq.Add(f.node("third", 0, 2))
	assert.Equal(t, []string{"first", "second", "third"}, drain(t, pq))
}

func TestPriorityQueue_CanReplaceStrictlyCheaper(t *testing.T) {
	f := newFixture()
	pq := search.NewPriorityQueue[string, string]()
	pq.Add(f.node("a", 5, 0))

	assert.False(t, pq.CanReplace(f.node("a", 5, 0)), "equal f is not an improvement")
	assert.False(t, pq.CanReplace(f.node("a", 6, 0)))
	assert.True(t, pq.CanReplace(f.node("a", 4, 0)))
	assert.False(t, pq.CanReplace(f.node("missing", 0, 0)))
}

func TestPriorityQueue_LazyReplace(t *testing.T) {
	f := newFixture()
	pq := search.NewPriorityQueue[string, string]()
	pq.Add(f.node("a", 10, 0))
	pq.Add(f.node("b", 3, 0))

	old, ok := pq.Replace(f.node("a", 1, 0))
	require.True(t, ok)
	assert.Equal(t, 10.0, old.PathCost())
	assert.Equal(t, 2, pq.Len())
	assert.Equal(t, 1, pq.Stale())

	n, err := pq.Remove()
	require.NoError(t, err)
	assert.Equal(t, "a", n.State())
	assert.Equal(t, 1.0, n.PathCost())

	n, err = pq.Remove()
	require.NoError(t, err)
	assert.Equal(t, "b", n.State())

	// only the superseded entry is left: logically empty
	assert.True(t, pq.IsEmpty())
	assert.Equal(t, 1, pq.Stale())
	_, err = pq.Remove()
	assert.ErrorIs(t, err, search.ErrFrontierEmpty)
	assert.Equal(t, 0, pq.Stale())
}

func TestPriorityQueue_ReplaceAbsentAdds(t *testing.T) {
	f := newFixture()
	pq := search.NewPriorityQueue[string, string]()
	_, ok := pq.Replace(f.node("a", 1, 0))
	assert.False(t, ok)
	assert.True(t, pq.Contains("a"))
	assert.Equal(t, []string{"a"}, drain(t, pq))
}
