package mcmc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negcycle/graph"
	"github.com/katalvlaran/negcycle/weight"
)

func TestApplyInit_Max(t *testing.T) {
	g, err := graph.New[int64](2, []graph.Edge{{Tail: 0, Head: 1}, {Tail: 1, Head: 0}})
	require.NoError(t, err)
	p := graph.NewPotential[int64](2)
	dom := weight.NewDomain[int64]()
	applyInit(g, p, Max, rand.New(rand.NewSource(1)), dom, 7)

	require.Equal(t, int64(7), g.Weight(0))
	require.Equal(t, int64(7), g.Weight(1))
	require.Equal(t, int64(0), p.Get(0))
}

func TestApplyInit_UniformStaysWithinZeroToMax(t *testing.T) {
	g, err := graph.New[int64](2, []graph.Edge{{Tail: 0, Head: 1}})
	require.NoError(t, err)
	p := graph.NewPotential[int64](2)
	dom := weight.NewDomain[int64]()
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		applyInit(g, p, Uniform, rng, dom, 10)
		w := g.Weight(0)
		require.True(t, w >= 0 && w <= 10)
	}
}
