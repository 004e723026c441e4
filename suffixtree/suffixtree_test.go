package suffixtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctcbeam/suffixtree"
)

func TestNewHasRootOnly(t *testing.T) {
	tr := suffixtree.New()
	require.Equal(t, suffixtree.NodeID(0), tr.Root())
	require.Equal(t, 1, tr.Len())
}

func TestGetOrCreateChildCreatesOnce(t *testing.T) {
	tr := suffixtree.New()
	root := tr.Root()

	c1 := tr.GetOrCreateChild(root, 1, 5)
	c2 := tr.GetOrCreateChild(root, 1, 9)
	require.Equal(t, c1, c2, "repeat lookup must return the same node")
	require.Equal(t, 5, tr.Time(c1), "time must not be updated on repeat lookup")
	require.Equal(t, 1, tr.Label(c1))
	require.Equal(t, root, tr.Parent(c1))
}

func TestGetOrCreateChildDistinctLabels(t *testing.T) {
	tr := suffixtree.New()
	root := tr.Root()

	a := tr.GetOrCreateChild(root, 1, 0)
	b := tr.GetOrCreateChild(root, 2, 0)
	require.NotEqual(t, a, b)
	require.Equal(t, 3, tr.Len())
}

func TestPathDropsRootAndReverses(t *testing.T) {
	tr := suffixtree.New()
	root := tr.Root()

	n1 := tr.GetOrCreateChild(root, 1, 0)
	n2 := tr.GetOrCreateChild(n1, 2, 3)
	n3 := tr.GetOrCreateChild(n2, 3, 7)

	path := tr.Path(n3)
	require.Equal(t, []suffixtree.LabelAt{
		{Label: 1, Time: 0},
		{Label: 2, Time: 3},
		{Label: 3, Time: 7},
	}, path)
}

func TestPathAtRootIsEmpty(t *testing.T) {
	tr := suffixtree.New()
	require.Empty(t, tr.Path(tr.Root()))
}

func TestArenaGrowsOnlyOnNewPrefixes(t *testing.T) {
	tr := suffixtree.New()
	root := tr.Root()
	for i := 0; i < 5; i++ {
		tr.GetOrCreateChild(root, 1, i) // same label every time
	}
	require.Equal(t, 2, tr.Len(), "repeated lookups must not grow the arena")
}
