package mcmc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/negcycle/graph"
	"github.com/katalvlaran/negcycle/internal/verify"
	"github.com/katalvlaran/negcycle/oracle"
	"github.com/katalvlaran/negcycle/weight"
)

// Run walks g's edge weights through the proposal chain and returns the
// potential left consistent with the final weighting. g is mutated in
// place; its topology never changes, only SetWeight calls.
func Run[T weight.Numeric](g *graph.Graph[T], opts ...Option[T]) (*graph.Potential[T], Stats[T], error) {
	cfg := newConfig[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g.M() == 0 {
		return nil, Stats[T]{}, fmt.Errorf("mcmc.Run: %w", ErrNoEdges)
	}
	if weight.Less(cfg.max, cfg.min) {
		return nil, Stats[T]{}, fmt.Errorf("mcmc.Run: %w", ErrInvalidBounds)
	}
	if cfg.rng == nil {
		return nil, Stats[T]{}, fmt.Errorf("mcmc.Run: %w", ErrRandRequired)
	}
	if cfg.oracle == nil {
		cfg.oracle = oracle.NewBiDijkstra[T](g.N())
	}

	dom := weight.NewDomain[T]()
	p := graph.NewPotential[T](g.N())
	applyInit(g, p, cfg.init, cfg.rng, dom, cfg.max)

	if cfg.verify && verify.HasNegativeCycle[T](g) {
		return nil, Stats[T]{}, fmt.Errorf("mcmc.Run: %w", ErrInfeasibleStart)
	}

	stats := Stats[T]{}
	propose := func(idx, e int, wPrime T) {
		before := g.Weight(e)
		accepted := false

		if !weight.Less(wPrime, before) {
			g.SetWeight(e, wPrime)
			accepted = true
		} else if cfg.oracle.Query(g, p, e, wPrime) {
			g.SetWeight(e, wPrime)
			cfg.oracle.Repair(g, p, e, wPrime)
			accepted = true
		}

		stats.Proposals++
		if accepted {
			stats.Accepted++
		} else {
			stats.Rejected++
		}
		cfg.hooks.fire(Proposal[T]{
			Index:    idx,
			Edge:     e,
			Tail:     g.Tail(e),
			Head:     g.Head(e),
			Previous: before,
			Proposed: wPrime,
			Accepted: accepted,
		}, stats)
	}

	if cfg.roundsPerEdge >= 0 {
		numProposals := int(math.Floor(cfg.roundsPerEdge * float64(g.M())))
		for i := 0; i < numProposals; i++ {
			e := cfg.rng.Intn(g.M())
			wPrime := dom.Sample(cfg.rng, cfg.min, cfg.max)
			propose(i, e, wPrime)
		}
	} else {
		perm := cfg.rng.Perm(g.M())
		for i, e := range perm {
			propose(i, e, cfg.min)
		}
	}

	if cfg.verify && verify.HasNegativeCycle[T](g) {
		return nil, stats, fmt.Errorf("mcmc.Run: %w", ErrInfeasibleResult)
	}

	return p, stats, nil
}
