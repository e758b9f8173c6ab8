package oracle

import (
	"github.com/katalvlaran/negcycle/graph"
	"github.com/katalvlaran/negcycle/weight"
)

// state tags for the touched-node scratch, reset in O(touched) rather than
// O(n) between queries via an explicit touched list rather than a
// generation counter, since node counts here are small enough that a
// slice append is cheaper than a second array.
const (
	unseen uint8 = iota
	queued
	settled
)

// Dijkstra is the unidirectional feasibility oracle. On a
// proposal to lower edge e=(u,v) to w', it runs Dijkstra from v over
// reduced-cost edge weights, stopping as soon as either u is extracted
// (reject: a negative cycle through e exists) or the next candidate's key
// reaches the acceptance threshold (accept).
type Dijkstra[T weight.Numeric] struct {
	dist  []T
	state []uint8
	touch []int32
	pq    *addrHeap[T]

	// scratch from the most recent Query, consumed by the following Repair.
	delta     T
	threshold T
	u, v      int32
}

// NewDijkstra returns a Dijkstra oracle with scratch state sized for a graph
// of n nodes. The same value may be reused across every proposal in a run.
func NewDijkstra[T weight.Numeric](n int) *Dijkstra[T] {
	state := make([]uint8, n)
	return &Dijkstra[T]{
		dist:  make([]T, n),
		state: state,
		touch: make([]int32, 0, n),
		pq:    newAddrHeap[T](n),
	}
}

func (d *Dijkstra[T]) Name() string { return "d" }

func (d *Dijkstra[T]) reset() {
	for _, node := range d.touch {
		d.state[node] = unseen
	}
	d.touch = d.touch[:0]
	d.pq.reset()
}

func (d *Dijkstra[T]) Query(g *graph.Graph[T], p *graph.Potential[T], e int, wPrime T) bool {
	d.reset()

	u, v := int32(g.Tail(e)), int32(g.Head(e))
	d.u, d.v = u, v
	d.delta = weight.Add(wPrime, weight.Sub(p.Get(int(u)), p.Get(int(v))))
	d.threshold = -d.delta

	if u == v {
		// A self-loop is its own cycle: feasible iff its weight alone stays
		// nonnegative, independent of the rest of the graph.
		return !weight.Less(wPrime, 0)
	}

	var zero T
	d.dist[v] = zero
	d.state[v] = queued
	d.touch = append(d.touch, v)
	d.pq.push(v, zero)

	for d.pq.len() > 0 {
		x, dx := d.pq.popMin()
		if !weight.Less(dx, d.threshold) {
			// Nothing remaining in the frontier can be cheaper than dx
			// (heap invariant), so no unsettled node — including u, if it
			// is still unsettled — can violate the threshold either.
			return true
		}
		if x == u {
			return false
		}
		d.dist[x] = dx
		d.state[x] = settled

		for _, eid := range g.OutEdges(int(x)) {
			y := int32(g.Head(int(eid)))
			if d.state[y] == settled {
				continue
			}
			rc := graph.ReducedCost(g, p, int(eid))
			cand := weight.Add(dx, rc)
			if d.state[y] == unseen {
				d.state[y] = queued
				d.touch = append(d.touch, y)
				d.pq.push(y, cand)
			} else {
				d.pq.decreaseKey(y, cand)
			}
		}
	}

	// Heap exhausted without reaching u and without a candidate crossing
	// the threshold: u is unreachable from v, so no cycle through e exists.
	return true
}

func (d *Dijkstra[T]) Repair(g *graph.Graph[T], p *graph.Potential[T], e int, wPrime T) {
	for _, x := range d.touch {
		if d.state[x] != settled {
			continue
		}
		// h'(x) = h(x) + dist[x] + delta for every node settled strictly
		// below threshold; this is exactly the shift that drives the
		// newly tightened edge's reduced cost to zero while leaving every
		// other edge's reduced cost nonnegative.
		shift := weight.Add(d.dist[x], d.delta)
		p.Add(int(x), shift)
	}
}
