package generators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGNP_ZeroProbabilityYieldsNoEdges(t *testing.T) {
	n, edges, err := GNP(5, 0.0)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Empty(t, edges)
}

func TestGNP_OneProbabilityYieldsComplete(t *testing.T) {
	_, edges, err := GNP(4, 1.0)
	require.NoError(t, err)
	require.Len(t, edges, 12)
}

func TestGNP_RequiresRandForFractionalP(t *testing.T) {
	_, _, err := GNP(5, 0.5)
	require.True(t, errors.Is(err, ErrNeedRandSource))
}

func TestGNP_DeterministicForFixedSeed(t *testing.T) {
	_, e1, err := GNP(30, 0.2, WithSeed(11))
	require.NoError(t, err)
	_, e2, err := GNP(30, 0.2, WithSeed(11))
	require.NoError(t, err)
	require.Equal(t, e1, e2)
	require.NotEmpty(t, e1)
}

func TestGNP_NoSelfLoopsByDefault(t *testing.T) {
	_, edges, err := GNP(20, 0.4, WithSeed(3))
	require.NoError(t, err)
	for _, e := range edges {
		require.NotEqual(t, e.Tail, e.Head)
	}
}
