package oracle

import (
	"github.com/katalvlaran/negcycle/graph"
	"github.com/katalvlaran/negcycle/weight"
)

// BellmanFord is the reference oracle: it never consults the potential to
// decide feasibility, working instead directly on raw edge weights via an
// SPFA-style queue relaxation. It exists as a reference to cross-check the
// potential-based oracles against and as the "-a bf" choice for callers who distrust
// the reduced-cost machinery; it is asymptotically the slowest of the
// three.
type BellmanFord[T weight.Numeric] struct {
	dist         []T
	reached      []bool
	inQueue      []bool
	enqueueCount []int32
	queue        []int32
	head         int
	touch        []int32
	n            int

	delta T
	v     int32
}

// NewBellmanFord returns a BellmanFord oracle with scratch sized for n nodes.
func NewBellmanFord[T weight.Numeric](n int) *BellmanFord[T] {
	return &BellmanFord[T]{
		dist:         make([]T, n),
		reached:      make([]bool, n),
		inQueue:      make([]bool, n),
		enqueueCount: make([]int32, n),
		queue:        make([]int32, 0, n),
		touch:        make([]int32, 0, n),
		n:            n,
	}
}

func (b *BellmanFord[T]) Name() string { return "bf" }

func (b *BellmanFord[T]) reset() {
	for _, x := range b.touch {
		b.reached[x] = false
		b.inQueue[x] = false
		b.enqueueCount[x] = 0
	}
	b.touch = b.touch[:0]
	b.queue = b.queue[:0]
	b.head = 0
}

func (b *BellmanFord[T]) enqueue(x int32) {
	b.queue = append(b.queue, x)
	b.inQueue[x] = true
}

func (b *BellmanFord[T]) dequeue() int32 {
	x := b.queue[b.head]
	b.head++
	b.inQueue[x] = false
	return x
}

func (b *BellmanFord[T]) Query(g *graph.Graph[T], p *graph.Potential[T], e int, wPrime T) bool {
	b.reset()

	u, v := int32(g.Tail(e)), int32(g.Head(e))
	b.v = v
	b.delta = weight.Add(wPrime, weight.Sub(p.Get(int(u)), p.Get(int(v))))

	if u == v {
		return !weight.Less(wPrime, 0)
	}

	var zero T
	b.dist[v] = zero
	b.reached[v] = true
	b.touch = append(b.touch, v)
	b.enqueue(v)

	for b.head < len(b.queue) {
		x := b.dequeue()
		dx := b.dist[x]
		for _, eid := range g.OutEdges(int(x)) {
			w := g.Weight(int(eid))
			if int(eid) == e {
				w = wPrime
			}
			y := int32(g.Head(int(eid)))
			cand := weight.Add(dx, w)
			if !b.reached[y] || weight.Less(cand, b.dist[y]) {
				b.dist[y] = cand
				if !b.reached[y] {
					b.reached[y] = true
					b.touch = append(b.touch, y)
				}
				if !b.inQueue[y] {
					b.enqueueCount[y]++
					if int(b.enqueueCount[y]) > b.n {
						return false // node relaxed more than n times: negative cycle
					}
					b.enqueue(y)
				}
			}
		}
	}

	if !b.reached[u] {
		return true
	}
	return !weight.Less(weight.Add(wPrime, b.dist[u]), 0)
}

func (b *BellmanFord[T]) Repair(g *graph.Graph[T], p *graph.Potential[T], e int, wPrime T) {
	hv := p.Get(int(b.v))
	for _, x := range b.touch {
		if !b.reached[x] {
			continue
		}
		candidate := weight.Add(weight.Add(b.dist[x], hv), b.delta)
		if weight.Less(candidate, p.Get(int(x))) {
			p.Set(int(x), candidate)
		}
	}
}
