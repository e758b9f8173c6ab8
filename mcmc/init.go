package mcmc

import (
	"math/rand"

	"github.com/katalvlaran/negcycle/graph"
	"github.com/katalvlaran/negcycle/weight"
)

// InitPolicy selects how a graph's edge weights and potential are seeded
// before the first proposal. Every policy produces a weighting with zero
// potential valid against it, since every policy only ever assigns
// nonnegative weights.
type InitPolicy uint8

const (
	// Max sets every edge to w_max. The caller is responsible for ensuring
	// w_max >= 0; this is not re-validated at runtime.
	Max InitPolicy = iota
	// Zero sets every edge to the zero value of T, always feasible
	// regardless of the configured bounds.
	Zero
	// Uniform draws each edge weight independently and uniformly from
	// [0, w_max] rather than the full [w_min, w_max] — entering the
	// negative region only happens once the chain has a valid potential
	// to guard it, keeping initialization itself trivially feasible.
	Uniform
)

func (p InitPolicy) String() string {
	switch p {
	case Max:
		return "max"
	case Zero:
		return "zero"
	case Uniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// applyInit seeds g's edge weights per policy and resets p to zero. It is
// always safe to call before the first proposal: every policy produces
// nonnegative weights, for which the zero potential is trivially valid.
func applyInit[T weight.Numeric](g *graph.Graph[T], p *graph.Potential[T], policy InitPolicy, rng *rand.Rand, dom weight.Domain[T], max T) {
	var zero T
	switch policy {
	case Max:
		for e := 0; e < g.M(); e++ {
			g.SetWeight(e, max)
		}
	case Zero:
		for e := 0; e < g.M(); e++ {
			g.SetWeight(e, zero)
		}
	case Uniform:
		for e := 0; e < g.M(); e++ {
			g.SetWeight(e, dom.Sample(rng, zero, max))
		}
	}
	for x := 0; x < p.N(); x++ {
		p.Set(x, zero)
	}
}
