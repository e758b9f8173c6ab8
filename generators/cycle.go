// SPDX-License-Identifier: MIT
// Package: negcycle/generators
//
package generators

import (
	"fmt"

	"github.com/katalvlaran/negcycle/graph"
)

const minCycleNodes = 1

// Cycle returns the n-node directed ring 0->1->...->(n-1)->0. n=1 yields a
// single self-loop, useful as a minimal fixture for exercising the
// negative-cycle invariant directly: a self-loop is a cycle of length one.
func Cycle(n int) (int, []graph.Edge, error) {
	if n < minCycleNodes {
		return 0, nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}

	edges := make([]graph.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = graph.Edge{Tail: i, Head: (i + 1) % n}
	}
	return n, edges, nil
}
