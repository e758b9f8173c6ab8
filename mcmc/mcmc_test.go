package mcmc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/negcycle/graph"
	"github.com/katalvlaran/negcycle/internal/verify"
	"github.com/katalvlaran/negcycle/oracle"
)

func ring4(t *testing.T) *graph.Graph[int64] {
	t.Helper()
	g, err := graph.New[int64](4, []graph.Edge{
		{Tail: 0, Head: 1}, {Tail: 1, Head: 2}, {Tail: 2, Head: 3}, {Tail: 3, Head: 0},
	})
	require.NoError(t, err)
	return g
}

func TestRun_RequiresRand(t *testing.T) {
	g := ring4(t)
	_, _, err := Run[int64](g, WithBounds[int64](-5, 5))
	require.True(t, errors.Is(err, ErrRandRequired))
}

func TestRun_RejectsBadBounds(t *testing.T) {
	g := ring4(t)
	_, _, err := Run[int64](g, WithBounds[int64](5, -5), WithSeed[int64](1))
	require.True(t, errors.Is(err, ErrInvalidBounds))
}

func TestRun_ResultIsFeasible(t *testing.T) {
	for _, o := range []oracle.Oracle[int64]{
		oracle.NewDijkstra[int64](4),
		oracle.NewBiDijkstra[int64](4),
		oracle.NewBellmanFord[int64](4),
	} {
		t.Run(o.Name(), func(t *testing.T) {
			g := ring4(t)
			p, stats, err := Run[int64](g,
				WithBounds[int64](-5, 5),
				WithSeed[int64](42),
				WithOracle[int64](o),
				WithRoundsPerEdge[int64](20),
			)
			require.NoError(t, err)
			require.Equal(t, 80, stats.Proposals)
			require.Equal(t, stats.Proposals, stats.Accepted+stats.Rejected)

			for e := 0; e < g.M(); e++ {
				require.False(t, graph.ReducedCost(g, p, e) < 0)
			}
			require.False(t, verify.HasNegativeCycle[int64](g))
		})
	}
}

func TestRun_SweepModeVisitsEveryEdgeOnce(t *testing.T) {
	g := ring4(t)
	seen := make(map[int]int)
	_, stats, err := Run[int64](g,
		WithBounds[int64](-3, 3),
		WithSeed[int64](7),
		WithRoundsPerEdge[int64](-1),
		WithHooks[int64](Hooks[int64]{
			OnProposal: func(pr Proposal[int64]) { seen[pr.Edge]++ },
		}),
	)
	require.NoError(t, err)
	require.Equal(t, g.M(), stats.Proposals)
	require.Len(t, seen, g.M())
	for _, count := range seen {
		require.Equal(t, 1, count)
	}
}

func TestRun_VerifyCatchesNothingOnFeasibleRun(t *testing.T) {
	g := ring4(t)
	_, _, err := Run[int64](g,
		WithBounds[int64](-2, 2),
		WithSeed[int64](3),
		WithRoundsPerEdge[int64](5),
		WithVerify[int64](true),
	)
	require.NoError(t, err)
}

func TestRun_RaiseAlwaysAccepted(t *testing.T) {
	g := ring4(t)
	var accepted, raises int
	_, _, err := Run[int64](g,
		WithBounds[int64](0, 10),
		WithSeed[int64](9),
		WithInit[int64](Zero),
		WithRoundsPerEdge[int64](30),
		WithHooks[int64](Hooks[int64]{
			OnProposal: func(pr Proposal[int64]) {
				if pr.Proposed >= pr.Previous {
					raises++
					if pr.Accepted {
						accepted++
					}
				}
			},
		}),
	)
	require.NoError(t, err)
	require.Equal(t, raises, accepted)
}
