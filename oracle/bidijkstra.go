package oracle

import (
	"github.com/katalvlaran/negcycle/graph"
	"github.com/katalvlaran/negcycle/weight"
)

// BiDijkstra is the production-default feasibility oracle: it runs a
// forward reduced-cost search from v alongside a backward reduced-cost
// search from u over the reverse adjacency, so a negative cycle can
// usually be certified from a meeting point long before either frontier
// alone would reach the threshold.
//
// Only the forward side ever repairs the potential: Repair first continues
// the forward search until its frontier reaches the threshold, so the
// forward-settled set always ends up a superset of what a standalone
// forward search alone would have produced, and the same repair formula
// applies unchanged. The backward search exists purely to certify
// rejection earlier than a forward-only search could; it never
// contributes to the repaired potential.
type BiDijkstra[T weight.Numeric] struct {
	stateF, stateB []uint8
	distF, distB   []T
	touchF, touchB []int32
	heapF, heapB   *addrHeap[T]

	delta     T
	threshold T
	u, v      int32
}

// NewBiDijkstra returns a BiDijkstra oracle with scratch sized for n nodes.
func NewBiDijkstra[T weight.Numeric](n int) *BiDijkstra[T] {
	return &BiDijkstra[T]{
		stateF: make([]uint8, n),
		stateB: make([]uint8, n),
		distF:  make([]T, n),
		distB:  make([]T, n),
		touchF: make([]int32, 0, n),
		touchB: make([]int32, 0, n),
		heapF:  newAddrHeap[T](n),
		heapB:  newAddrHeap[T](n),
	}
}

func (d *BiDijkstra[T]) Name() string { return "bd" }

func (d *BiDijkstra[T]) reset() {
	for _, x := range d.touchF {
		d.stateF[x] = unseen
	}
	for _, x := range d.touchB {
		d.stateB[x] = unseen
	}
	d.touchF = d.touchF[:0]
	d.touchB = d.touchB[:0]
	d.heapF.reset()
	d.heapB.reset()
}

func (d *BiDijkstra[T]) Query(g *graph.Graph[T], p *graph.Potential[T], e int, wPrime T) bool {
	d.reset()

	u, v := int32(g.Tail(e)), int32(g.Head(e))
	d.u, d.v = u, v
	d.delta = weight.Add(wPrime, weight.Sub(p.Get(int(u)), p.Get(int(v))))
	d.threshold = -d.delta

	if u == v {
		return !weight.Less(wPrime, 0)
	}

	var zero T
	d.stateF[v], d.stateB[u] = queued, queued
	d.touchF, d.touchB = append(d.touchF, v), append(d.touchB, u)
	d.heapF.push(v, zero)
	d.heapB.push(u, zero)

	for {
		topF, hasF := d.topKey(d.heapF)
		topB, hasB := d.topKey(d.heapB)

		switch {
		case hasF && hasB:
			if !weight.Less(weight.Add(topF, topB), d.threshold) {
				return true
			}
		case hasF:
			if !weight.Less(topF, d.threshold) {
				return true
			}
		case hasB:
			if !weight.Less(topB, d.threshold) {
				return true
			}
		default:
			return true
		}

		popForward := hasF && (!hasB || !weight.Less(topB, topF))
		if popForward {
			x, dx := d.heapF.popMin()
			if x == u {
				return false
			}
			d.settleForward(x, dx)
			for _, eid := range g.OutEdges(int(x)) {
				y := int32(g.Head(int(eid)))
				if d.stateF[y] == settled {
					continue
				}
				cand := weight.Add(dx, graph.ReducedCost(g, p, int(eid)))
				if d.stateB[y] == settled && weight.Less(weight.Add(cand, d.distB[y]), d.threshold) {
					return false
				}
				if d.stateF[y] == unseen {
					d.stateF[y] = queued
					d.touchF = append(d.touchF, y)
					d.heapF.push(y, cand)
				} else {
					d.heapF.decreaseKey(y, cand)
				}
			}
			if d.checkMeeting(x) {
				return false
			}
		} else {
			y, dy := d.heapB.popMin()
			d.settleBackward(y, dy)
			for _, eid := range g.InEdges(int(y)) {
				a := int32(g.Tail(int(eid)))
				if d.stateB[a] == settled {
					continue
				}
				cand := weight.Add(dy, graph.ReducedCost(g, p, int(eid)))
				if d.stateF[a] == settled && weight.Less(weight.Add(cand, d.distF[a]), d.threshold) {
					return false
				}
				if d.stateB[a] == unseen {
					d.stateB[a] = queued
					d.touchB = append(d.touchB, a)
					d.heapB.push(a, cand)
				} else {
					d.heapB.decreaseKey(a, cand)
				}
			}
			if d.checkMeeting(y) {
				return false
			}
		}
	}
}

func (d *BiDijkstra[T]) settleForward(x int32, dist T) {
	if d.stateF[x] != settled {
		if d.stateF[x] == unseen {
			d.touchF = append(d.touchF, x)
		}
		d.stateF[x] = settled
		d.distF[x] = dist
	}
}

func (d *BiDijkstra[T]) settleBackward(x int32, dist T) {
	if d.stateB[x] != settled {
		if d.stateB[x] == unseen {
			d.touchB = append(d.touchB, x)
		}
		d.stateB[x] = settled
		d.distB[x] = dist
	}
}

// checkMeeting reports whether x is settled on both sides with a combined
// distance certifying a negative cycle through the proposed edge.
func (d *BiDijkstra[T]) checkMeeting(x int32) bool {
	if d.stateF[x] != settled || d.stateB[x] != settled {
		return false
	}
	total := weight.Add(d.distF[x], d.distB[x])
	return weight.Less(total, d.threshold)
}

func (d *BiDijkstra[T]) topKey(h *addrHeap[T]) (T, bool) {
	if h.len() == 0 {
		var zero T
		return zero, false
	}
	return h.peek(), true
}

func (d *BiDijkstra[T]) Repair(g *graph.Graph[T], p *graph.Potential[T], e int, wPrime T) {
	for d.heapF.len() > 0 && weight.Less(d.heapF.peek(), d.threshold) {
		x, dx := d.heapF.popMin()
		d.settleForward(x, dx)
		for _, eid := range g.OutEdges(int(x)) {
			if y := int32(g.Head(int(eid))); d.stateF[y] != settled {
				if d.stateF[y] == unseen {
					d.stateF[y] = queued
					d.touchF = append(d.touchF, y)
				}
				d.heapF.pushOrDecrease(y, weight.Add(dx, graph.ReducedCost(g, p, int(eid))))
			}
		}
	}
	for _, x := range d.touchF {
		if d.stateF[x] != settled {
			continue
		}
		shift := weight.Add(d.distF[x], d.delta)
		p.Add(int(x), shift)
	}
}
