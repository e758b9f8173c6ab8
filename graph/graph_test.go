package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadInput(t *testing.T) {
	_, err := New[float64](0, []Edge{{0, 0}})
	require.True(t, errors.Is(err, ErrTooFewNodes))

	_, err = New[float64](3, nil)
	require.True(t, errors.Is(err, ErrEmptyEdgeList))

	_, err = New[float64](3, []Edge{{0, 5}})
	require.True(t, errors.Is(err, ErrNodeOutOfRange))
}

func TestNew_CSRAdjacency(t *testing.T) {
	// 0->1, 0->2, 1->2, 2->0
	edges := []Edge{{0, 1}, {0, 2}, {1, 2}, {2, 0}}
	g, err := New[int64](3, edges)
	require.NoError(t, err)

	require.Equal(t, 3, g.N())
	require.Equal(t, 4, g.M())

	out0 := g.OutEdges(0)
	require.Len(t, out0, 2)
	require.Equal(t, 0, int(out0[0])) // stable insertion order: edge 0 then edge 1
	require.Equal(t, 1, int(out0[1]))

	in2 := g.InEdges(2)
	require.Len(t, in2, 2)
	require.Equal(t, 1, int(in2[0])) // edge id of 0->2
	require.Equal(t, 2, int(in2[1])) // edge id of 1->2

	require.Equal(t, 2, g.OutDegree(0))
	require.Equal(t, 1, g.InDegree(1))
}

func TestSetWeight_MutatesOnlyTargetEdge(t *testing.T) {
	edges := []Edge{{0, 1}, {1, 0}}
	g, err := New[float64](2, edges)
	require.NoError(t, err)

	g.SetWeight(0, -1.5)
	require.Equal(t, -1.5, g.Weight(0))
	require.Equal(t, 0.0, g.Weight(1))
}

func TestPotential_ReducedCost(t *testing.T) {
	edges := []Edge{{0, 1}}
	g, err := New[float64](2, edges)
	require.NoError(t, err)
	g.SetWeight(0, -3.0)

	p := NewPotential[float64](2)
	p.Set(0, 5.0)
	p.Set(1, 1.0)

	// w + h[tail] - h[head] = -3 + 5 - 1 = 1
	require.Equal(t, 1.0, ReducedCost(g, p, 0))
	require.Equal(t, 3.0, ReducedCostWith(g, p, 0, -1.0))
}

func TestPotential_Renormalize(t *testing.T) {
	p := NewPotential[int64](3)
	p.Set(0, 5)
	p.Set(1, 2)
	p.Set(2, 8)
	p.Renormalize()
	require.Equal(t, int64(3), p.Get(0))
	require.Equal(t, int64(0), p.Get(1))
	require.Equal(t, int64(6), p.Get(2))
}
