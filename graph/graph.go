package graph

import (
	"fmt"

	"github.com/katalvlaran/negcycle/weight"
)

// Edge is a single (tail, head) arc as handed in by a generator. Weight
// assignment happens later, via mcmc's initialization policies — a freshly
// built Graph always starts every edge weight at T's zero value.
type Edge struct {
	Tail int
	Head int
}

// Graph is an immutable directed multigraph over node ids [0, N) and edge
// ids [0, M): topology is fixed at construction time; only edge weights
// (via SetWeight) and the paired Potential mutate afterward.
type Graph[T weight.Numeric] struct {
	n int

	tails   []int32
	heads   []int32
	weights []T

	outOffsets []int32 // len n+1
	outEdges   []int32 // len m, edge ids grouped by tail
	inOffsets  []int32 // len n+1
	inEdges    []int32 // len m, edge ids grouped by head
}

// New builds a Graph from n nodes and the given edge list. Edge ids are
// assigned in input order (edges[i] gets id i) so callers can correlate
// generator output with graph state. Duplicate (tail, head) pairs are
// permitted; this is a multigraph.
func New[T weight.Numeric](n int, edges []Edge) (*Graph[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("graph.New: n=%d: %w", n, ErrTooFewNodes)
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("graph.New: %w", ErrEmptyEdgeList)
	}
	for i, e := range edges {
		if e.Tail < 0 || e.Tail >= n || e.Head < 0 || e.Head >= n {
			return nil, fmt.Errorf("graph.New: edge %d = (%d,%d), n=%d: %w", i, e.Tail, e.Head, n, ErrNodeOutOfRange)
		}
	}

	m := len(edges)
	tails := make([]int32, m)
	heads := make([]int32, m)
	for i, e := range edges {
		tails[i] = int32(e.Tail)
		heads[i] = int32(e.Head)
	}

	outOffsets, outEdges := buildCSR(n, tails)
	inOffsets, inEdges := buildCSR(n, heads)

	return &Graph[T]{
		n:          n,
		tails:      tails,
		heads:      heads,
		weights:    make([]T, m),
		outOffsets: outOffsets,
		outEdges:   outEdges,
		inOffsets:  inOffsets,
		inEdges:    inEdges,
	}, nil
}

// buildCSR groups edge ids by the given key (tail or head) into CSR form
// using a stable counting sort: O(n+m) time, and edges sharing a key retain
// their original relative (insertion) order, so edge ids stay stable and
// callers can rely on them across queries.
func buildCSR(n int, key []int32) (offsets, grouped []int32) {
	m := len(key)
	counts := make([]int32, n+1)
	for _, k := range key {
		counts[k+1]++
	}
	for i := 1; i <= n; i++ {
		counts[i] += counts[i-1]
	}

	offsets = make([]int32, n+1)
	copy(offsets, counts)

	cursor := make([]int32, n)
	copy(cursor, counts[:n])

	grouped = make([]int32, m)
	for edgeID, k := range key {
		grouped[cursor[k]] = int32(edgeID)
		cursor[k]++
	}
	return offsets, grouped
}

// N returns the number of nodes.
func (g *Graph[T]) N() int { return g.n }

// M returns the number of edges.
func (g *Graph[T]) M() int { return len(g.tails) }

// Tail returns the tail node of edge e.
func (g *Graph[T]) Tail(e int) int { return int(g.tails[e]) }

// Head returns the head node of edge e.
func (g *Graph[T]) Head(e int) int { return int(g.heads[e]) }

// Weight returns the current weight of edge e.
func (g *Graph[T]) Weight(e int) T { return g.weights[e] }

// SetWeight is the sole mutator of edge weights; the MCMC driver is the
// only caller.
func (g *Graph[T]) SetWeight(e int, w T) { g.weights[e] = w }

// OutEdges returns the edge ids of every arc leaving u, in stable
// insertion order.
func (g *Graph[T]) OutEdges(u int) []int32 {
	return g.outEdges[g.outOffsets[u]:g.outOffsets[u+1]]
}

// InEdges returns the edge ids of every arc entering u, in stable
// insertion order.
func (g *Graph[T]) InEdges(u int) []int32 {
	return g.inEdges[g.inOffsets[u]:g.inOffsets[u+1]]
}

// OutDegree returns the number of arcs leaving u.
func (g *Graph[T]) OutDegree(u int) int { return int(g.outOffsets[u+1] - g.outOffsets[u]) }

// InDegree returns the number of arcs entering u.
func (g *Graph[T]) InDegree(u int) int { return int(g.inOffsets[u+1] - g.inOffsets[u]) }
