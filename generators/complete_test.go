package generators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplete_ExcludesLoopsByDefault(t *testing.T) {
	n, edges, err := Complete(3)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Len(t, edges, 6)
	for _, e := range edges {
		require.NotEqual(t, e.Tail, e.Head)
	}
}

func TestComplete_WithLoops(t *testing.T) {
	_, edges, err := Complete(3, WithLoops(true))
	require.NoError(t, err)
	require.Len(t, edges, 9)
}
