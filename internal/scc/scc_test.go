package scc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negcycle/graph"
)

// Two triangles (0-1-2 and 3-4-5) joined by a one-way bridge 2->3, so the
// largest SCC is either triangle (size 3); the bridge edge belongs to
// neither component.
func TestLargest_PicksBiggestComponent(t *testing.T) {
	g, err := graph.New[int64](6, []graph.Edge{
		{Tail: 0, Head: 1}, {Tail: 1, Head: 2}, {Tail: 2, Head: 0},
		{Tail: 3, Head: 4}, {Tail: 4, Head: 5}, {Tail: 5, Head: 3},
		{Tail: 2, Head: 3},
	})
	require.NoError(t, err)

	largest := Largest(g)
	require.Len(t, largest, 3)
	require.True(t, largest[0] == 0 || largest[0] == 3)
}

func TestLargest_SingleNodeGraph(t *testing.T) {
	g, err := graph.New[int64](1, []graph.Edge{{Tail: 0, Head: 0}})
	require.NoError(t, err)
	require.Equal(t, []int{0}, Largest(g))
}

func TestRestrict_RenumbersAndFiltersEdges(t *testing.T) {
	g, err := graph.New[int64](4, []graph.Edge{
		{Tail: 0, Head: 1}, {Tail: 1, Head: 2}, {Tail: 2, Head: 0}, {Tail: 2, Head: 3},
	})
	require.NoError(t, err)

	n, edges := Restrict[int64](g, []int{0, 1, 2})
	require.Equal(t, 3, n)
	require.Len(t, edges, 3)
	for _, e := range edges {
		require.True(t, e.Tail >= 0 && e.Tail < 3)
		require.True(t, e.Head >= 0 && e.Head < 3)
	}
}
