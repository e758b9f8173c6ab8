package generators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDSF_RequiresRand(t *testing.T) {
	_, _, err := DSF(10, 0.4, 0.4, 1, 1)
	require.True(t, errors.Is(err, ErrNeedRandSource))
}

func TestDSF_RejectsBadAlphaBeta(t *testing.T) {
	_, _, err := DSF(10, 0.6, 0.6, 1, 1, WithSeed(1))
	require.True(t, errors.Is(err, ErrInvalidParams))
}

func TestDSF_GrowsToExactlyNNodes(t *testing.T) {
	n := 15
	got, edges, err := DSF(n, 0.4, 0.3, 1, 1, WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, n, got)
	require.NotEmpty(t, edges)

	seen := make(map[int]bool)
	for _, e := range edges {
		seen[e.Tail] = true
		seen[e.Head] = true
	}
	require.LessOrEqual(t, len(seen), n)
	for id := range seen {
		require.True(t, id >= 0 && id < n)
	}
}

func TestDSF_Deterministic(t *testing.T) {
	_, e1, err := DSF(20, 0.3, 0.3, 1, 1, WithSeed(42))
	require.NoError(t, err)
	_, e2, err := DSF(20, 0.3, 0.3, 1, 1, WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, e1, e2)
}
