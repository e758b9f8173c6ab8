package generators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRHG_RequiresExactlyOneRadiusParam(t *testing.T) {
	r := 3.0
	d := 4.0
	_, _, err := RHG(10, 1.0, &r, &d, 0.5, WithSeed(1))
	require.True(t, errors.Is(err, ErrInvalidParams))

	_, _, err = RHG(10, 1.0, nil, nil, 0.5, WithSeed(1))
	require.True(t, errors.Is(err, ErrInvalidParams))
}

func TestRHG_RequiresRand(t *testing.T) {
	r := 3.0
	_, _, err := RHG(10, 1.0, &r, nil, 0.5)
	require.True(t, errors.Is(err, ErrNeedRandSource))
}

func TestRHG_BuildsWithRadius(t *testing.T) {
	r := 5.0
	n, edges, err := RHG(30, 1.0, &r, nil, 1.0, WithSeed(4))
	require.NoError(t, err)
	require.Equal(t, 30, n)
	for _, e := range edges {
		require.NotEqual(t, e.Tail, e.Head)
	}
}

func TestRHG_BuildsWithAvgDegree(t *testing.T) {
	d := 3.0
	n, _, err := RHG(30, 1.0, nil, &d, 1.0, WithSeed(4))
	require.NoError(t, err)
	require.Equal(t, 30, n)
}

func TestRHG_Deterministic(t *testing.T) {
	r := 4.0
	_, e1, err := RHG(25, 0.8, &r, nil, 0.5, WithSeed(2))
	require.NoError(t, err)
	_, e2, err := RHG(25, 0.8, &r, nil, 0.5, WithSeed(2))
	require.NoError(t, err)
	require.Equal(t, e1, e2)
}
