package graph

import "github.com/katalvlaran/negcycle/weight"

// Potential is the node-indexed labeling h such that the reduced cost
// w(e) + h[tail(e)] - h[head(e)] is nonnegative for every edge e. It is
// only ever mutated by the MCMC driver after an accepted proposal that
// strictly decreased some edge's weight.
type Potential[T weight.Numeric] struct {
	h []T
}

// NewPotential returns a Potential of size n with every entry set to zero,
// valid alongside any Graph whose edge weights are all nonnegative, the
// invariant every init policy establishes.
func NewPotential[T weight.Numeric](n int) *Potential[T] {
	return &Potential[T]{h: make([]T, n)}
}

// Get returns h[u].
func (p *Potential[T]) Get(u int) T { return p.h[u] }

// Set overwrites h[u]. Called exclusively by the MCMC driver's potential
// repair step.
func (p *Potential[T]) Set(u int, v T) { p.h[u] = v }

// Add adds delta to h[u], a convenience for the additive repair formulas in
// oracle.Repair.
func (p *Potential[T]) Add(u int, delta T) { p.h[u] = weight.Add(p.h[u], delta) }

// ReducedCost returns w(e) + h[tail(e)] - h[head(e)] for edge e of g.
func ReducedCost[T weight.Numeric](g *Graph[T], p *Potential[T], e int) T {
	u, v := g.Tail(e), g.Head(e)
	return weight.Sub(weight.Add(g.Weight(e), p.Get(u)), p.Get(v))
}

// ReducedCostWith is ReducedCost but for a tentative weight w' that has not
// been committed to the graph yet — the exact quantity an MCMC proposal
// needs to evaluate acceptance without mutating g first.
func ReducedCostWith[T weight.Numeric](g *Graph[T], p *Potential[T], e int, wPrime T) T {
	u, v := g.Tail(e), g.Head(e)
	return weight.Sub(weight.Add(wPrime, p.Get(u)), p.Get(v))
}

// Renormalize subtracts the minimum potential value from every entry.
// Reduced costs are invariant under this shift (h enters every edge's
// reduced cost as h[tail]-h[head]); running this periodically keeps integer
// potentials from drifting over a long run.
func (p *Potential[T]) Renormalize() {
	if len(p.h) == 0 {
		return
	}
	min := p.h[0]
	for _, v := range p.h[1:] {
		if weight.Less(v, min) {
			min = v
		}
	}
	if min == 0 {
		return
	}
	for i := range p.h {
		p.h[i] = weight.Sub(p.h[i], min)
	}
}

// N returns the number of nodes this potential covers.
func (p *Potential[T]) N() int { return len(p.h) }
