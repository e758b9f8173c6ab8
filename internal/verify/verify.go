package verify

import "github.com/katalvlaran/negcycle/weight"

type edgeSet[T weight.Numeric] interface {
	N() int
	M() int
	Tail(e int) int
	Head(e int) int
	Weight(e int) T
	OutEdges(u int) []int32
}

// HasNegativeCycle runs Bellman-Ford from a virtual source with a zero-cost
// edge to every node, so a negative cycle is detected regardless of which
// node it is reachable from. It returns as soon as a node's relaxation
// count exceeds n, the standard SPFA cycle certificate.
func HasNegativeCycle[T weight.Numeric](g edgeSet[T]) bool {
	_, cyclic := run(g)
	return cyclic
}

// FindNegativeCycle returns the edge ids forming a negative cycle, or nil
// if the graph is feasible. Used by the --check diagnostic dump to name an
// offending edge rather than only reporting failure.
func FindNegativeCycle[T weight.Numeric](g edgeSet[T]) []int32 {
	predEdge, cyclic := run(g)
	if !cyclic {
		return nil
	}
	return extractCycle(g, predEdge)
}

func run[T weight.Numeric](g edgeSet[T]) (predEdge []int32, cyclic bool) {
	n := g.N()
	dist := make([]T, n)   // every node starts at distance 0 via the virtual source
	count := make([]int32, n)
	inQueue := make([]bool, n)
	predEdge = make([]int32, n)
	for i := range predEdge {
		predEdge[i] = -1
	}

	queue := make([]int32, n)
	for i := 0; i < n; i++ {
		queue[i] = int32(i)
		inQueue[i] = true
	}

	for head := 0; head < len(queue); head++ {
		x := queue[head]
		inQueue[x] = false
		dx := dist[x]
		for _, eid := range g.OutEdges(int(x)) {
			y := int32(g.Head(int(eid)))
			cand := weight.Add(dx, g.Weight(int(eid)))
			if weight.Less(cand, dist[y]) {
				dist[y] = cand
				predEdge[y] = int32(eid)
				if !inQueue[y] {
					count[y]++
					if int(count[y]) > n {
						return predEdge, true
					}
					inQueue[y] = true
					queue = append(queue, y)
				}
			}
		}
	}
	return predEdge, false
}

// extractCycle walks predEdge backward n steps from an arbitrary node to
// guarantee landing inside the cycle (the relaxation graph's predecessor
// chain has depth at most n before repeating), then collects edges until
// the walk returns to its starting point.
func extractCycle[T weight.Numeric](g edgeSet[T], predEdge []int32) []int32 {
	n := g.N()
	var x int32 = -1
	for i := 0; i < n; i++ {
		if predEdge[i] >= 0 {
			x = int32(i)
			break
		}
	}
	if x < 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		if predEdge[x] < 0 {
			break
		}
		x = int32(g.Tail(int(predEdge[x])))
	}

	start := x
	var cycle []int32
	for {
		eid := predEdge[x]
		if eid < 0 {
			return nil
		}
		cycle = append(cycle, eid)
		x = int32(g.Tail(int(eid)))
		if x == start {
			break
		}
	}
	// reverse into tail-to-head order
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}
	return cycle
}
