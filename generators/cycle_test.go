package generators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCycle_BuildsRing(t *testing.T) {
	n, edges, err := Cycle(4)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Len(t, edges, 4)
	for i, e := range edges {
		require.Equal(t, i, e.Tail)
		require.Equal(t, (i+1)%4, e.Head)
	}
}

func TestCycle_SelfLoopAtOne(t *testing.T) {
	n, edges, err := Cycle(1)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []int{0}, []int{edges[0].Tail})
	require.Equal(t, 0, edges[0].Head)
}

func TestCycle_RejectsTooFew(t *testing.T) {
	_, _, err := Cycle(0)
	require.True(t, errors.Is(err, ErrTooFewNodes))
}
