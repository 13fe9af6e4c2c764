package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

func TestTree_RootInvariants(t *testing.T) {
	tree := search.NewTree[string, string](0)
	root := tree.Root("A", 2.5)

	assert.True(t, root.IsRoot())
	assert.Equal(t, search.NoParent, root.Parent())
	assert.Equal(t, 0, root.Depth())
	assert.Equal(t, 0.0, root.PathCost())
	assert.Equal(t, 2.5, root.Total())
	assert.Equal(t, "", root.Action())
	assert.Equal(t, 1, tree.Len())
}

func TestTree_GrowAccumulatesCost(t *testing.T) {
	tree := search.NewTree[string, string](4)
	root := tree.Root("A", 3)
	b := tree.Grow(root, "A→B", "B", 1.5, 2)
	c := tree.Grow(b, "B→C", "C", 2, 0.25)

	assert.Equal(t, root.ID(), b.Parent())
	assert.Equal(t, b.ID(), c.Parent())
	assert.Equal(t, 2, c.Depth())
	assert.Equal(t, 3.5, c.PathCost())
	assert.Equal(t, c.PathCost()+c.Heuristic(), c.Total())

	got, ok := tree.Get(c.ID())
	require.True(t, ok)
	assert.Equal(t, c, got)
}

func TestTree_PathRoundTrip(t *testing.T) {
	tree := search.NewTree[string, string](0)
	n := tree.Root("s0", 0)
	for _, s := range []string{"s1", "s2", "s3"} {
		n = tree.Grow(n, "to-"+s, s, 1, 0)
	}

	states := tree.States(n.ID())
	assert.Equal(t, []string{"s0", "s1", "s2", "s3"}, states)
	assert.Len(t, states, n.Depth()+1)
	assert.Equal(t, []string{"to-s1", "to-s2", "to-s3"}, tree.Actions(n.ID()))

	path := tree.Path(n.ID())
	require.Len(t, path, 4)
	assert.True(t, path[0].IsRoot())
}

func TestTree_ReleaseRefusesReferencedNode(t *testing.T) {
	tree := search.NewTree[string, string](0)
	root := tree.Root("A", 0)
	tree.Grow(root, "", "B", 1, 0)

	assert.False(t, tree.Release(root.ID()), "root still has a live child")
	assert.Equal(t, 2, tree.Len())
}

func TestTree_ReleaseCascadesThroughClosedAncestors(t *testing.T) {
	tree := search.NewTree[string, string](0)
	root := tree.Root("A", 0)
	b := tree.Grow(root, "", "B", 1, 0)
	c := tree.Grow(b, "", "C", 1, 0)

	tree.Close(root.ID())
	tree.Close(b.ID())
	assert.Equal(t, 3, tree.Len(), "closed nodes with live children stay")

	assert.True(t, tree.Release(c.ID()))
	assert.Equal(t, 0, tree.Len())
	_, ok := tree.Get(root.ID())
	assert.False(t, ok)
	assert.Nil(t, tree.States(c.ID()))
}

func TestTree_CascadeStopsAtOpenAncestor(t *testing.T) {
	tree := search.NewTree[string, string](0)
	root := tree.Root("A", 0)
	b := tree.Grow(root, "", "B", 1, 0)

	require.True(t, tree.Release(b.ID()))
	_, ok := tree.Get(root.ID())
	assert.True(t, ok, "root was never closed")
	assert.Equal(t, 1, tree.Len())
}

func TestTree_CloseLeafReleasesIt(t *testing.T) {
	tree := search.NewTree[string, string](0)
	root := tree.Root("A", 0)
	tree.Close(root.ID())
	assert.Equal(t, 0, tree.Len())
}

func TestTree_ReusesReleasedSlots(t *testing.T) {
	tree := search.NewTree[string, string](0)
	root := tree.Root("A", 0)
	b := tree.Grow(root, "", "B", 1, 0)
	require.True(t, tree.Release(b.ID()))

	c := tree.Grow(root, "", "C", 2, 0)
	assert.Equal(t, b.ID(), c.ID(), "freed slot is recycled")
	assert.Equal(t, []string{"A", "C"}, tree.States(c.ID()))
}
