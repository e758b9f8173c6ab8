// SPDX-License-Identifier: MIT
// Package: negcycle/generators
//
package generators

import (
	"fmt"

	"github.com/katalvlaran/negcycle/graph"
)

const minCompleteNodes = 1

// Complete returns every ordered pair (i,j), i != j, over n nodes: the
// directed complete graph K_n. This module's graphs are always directed,
// so every pair is emitted unconditionally in lexicographic (i,j) order.
// Pass WithLoops(true) to also include the n self-loops (i,i).
func Complete(n int, opts ...Option) (int, []graph.Edge, error) {
	if n < minCompleteNodes {
		return 0, nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	edges := make([]graph.Edge, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j && !cfg.loops {
				continue
			}
			edges = append(edges, graph.Edge{Tail: i, Head: j})
		}
	}
	return n, edges, nil
}
