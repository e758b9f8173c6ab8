package oracle

import (
	"github.com/katalvlaran/negcycle/graph"
	"github.com/katalvlaran/negcycle/weight"
)

// Oracle answers the single question the MCMC driver asks on every proposal
// that would lower an edge's weight below its currently committed value:
// does setting edge e to wPrime introduce a negative cycle, given the
// current potential p?
//
// Query must be called before Repair for a given proposal; Repair reuses
// scratch state Query populated (which nodes were reached and at what
// distance) rather than recomputing it, so the two must never be
// interleaved with another Query on the same Oracle value in between.
type Oracle[T weight.Numeric] interface {
	// Query reports whether lowering e to wPrime is feasible: true means no
	// negative cycle would result and the proposal may be accepted.
	Query(g *graph.Graph[T], p *graph.Potential[T], e int, wPrime T) bool

	// Repair updates p in place to restore the nonnegative-reduced-cost
	// invariant after the caller has committed wPrime to e via
	// g.SetWeight. It must only be called immediately after a Query that
	// returned true, on the same (g, e, wPrime).
	Repair(g *graph.Graph[T], p *graph.Potential[T], e int, wPrime T)

	// Name identifies the oracle for logging and the --check diagnostic
	// dump ("d", "bd", or "bf").
	Name() string
}
