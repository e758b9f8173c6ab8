package scc

import (
	"github.com/katalvlaran/negcycle/graph"
	"github.com/katalvlaran/negcycle/weight"
)

type edgeSet interface {
	N() int
	M() int
	Tail(e int) int
	Head(e int) int
	OutEdges(u int) []int32
}

// Largest returns the node ids (original numbering) belonging to a largest
// strongly connected component of g, in ascending order. Ties are broken in
// favor of the component Tarjan's algorithm completes first, with DFS roots
// tried in ascending node-id order.
//
// Tarjan's algorithm normally recurses once per DFS tree edge; this
// implementation keeps that recursion as an explicit stack instead, since
// this package's graphs come from generators that can run into the tens
// of thousands of nodes for benchmarking, and a worst-case path-shaped
// graph would blow a goroutine's default stack under call-per-node
// recursion.
func Largest(g edgeSet) []int {
	n := g.N()
	if n == 0 {
		return nil
	}

	const unvisited = -1
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = unvisited
	}

	var tarjanStack []int32
	var components [][]int
	nextIndex := 0

	type frame struct {
		node    int32
		edges   []int32
		edgePos int
	}
	var work []frame

	for root := 0; root < n; root++ {
		if index[root] != unvisited {
			continue
		}

		work = append(work, frame{node: int32(root), edges: g.OutEdges(root), edgePos: 0})
		index[root] = nextIndex
		lowlink[root] = nextIndex
		nextIndex++
		tarjanStack = append(tarjanStack, int32(root))
		onStack[root] = true

		for len(work) > 0 {
			top := &work[len(work)-1]
			v := int(top.node)

			if top.edgePos < len(top.edges) {
				eid := int(top.edges[top.edgePos])
				top.edgePos++
				w := g.Head(eid)

				switch {
				case index[w] == unvisited:
					index[w] = nextIndex
					lowlink[w] = nextIndex
					nextIndex++
					tarjanStack = append(tarjanStack, int32(w))
					onStack[w] = true
					work = append(work, frame{node: int32(w), edges: g.OutEdges(w), edgePos: 0})
				case onStack[w]:
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
				continue
			}

			// v's children are all explored; pop and propagate lowlink to parent.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := int(work[len(work)-1].node)
				if lowlink[v] < lowlink[parent] {
					lowlink[parent] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				var comp []int
				for {
					w := tarjanStack[len(tarjanStack)-1]
					tarjanStack = tarjanStack[:len(tarjanStack)-1]
					onStack[w] = false
					comp = append(comp, int(w))
					if int(w) == v {
						break
					}
				}
				components = append(components, comp)
			}
		}
	}

	best := components[0]
	for _, c := range components[1:] {
		if len(c) > len(best) {
			best = c
		}
	}

	for i := range best {
		for j := i + 1; j < len(best); j++ {
			if best[j] < best[i] {
				best[i], best[j] = best[j], best[i]
			}
		}
	}
	return best
}

// Restrict rebuilds a graph containing only the nodes in keep and the edges
// of g whose tail and head both survive, renumbering nodes 0..len(keep)-1 in
// keep's given order.
func Restrict[T weight.Numeric](g *graph.Graph[T], keep []int) (int, []graph.Edge) {
	remap := make(map[int]int, len(keep))
	for i, id := range keep {
		remap[id] = i
	}

	var edges []graph.Edge
	for e := 0; e < g.M(); e++ {
		u, uOK := remap[g.Tail(e)]
		v, vOK := remap[g.Head(e)]
		if uOK && vOK {
			edges = append(edges, graph.Edge{Tail: u, Head: v})
		}
	}
	return len(keep), edges
}
