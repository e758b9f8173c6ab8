// SPDX-License-Identifier: MIT
// Package: negcycle/generators
//
package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/negcycle/graph"
)

const minGNPNodes = 1

// GNP samples the directed Erdős–Rényi model: every ordered pair (i,j),
// i != j (or i == j too under WithLoops), is an edge independently with
// probability p. WithSeed/WithRand is required whenever 0 < p < 1.
//
// Rather than a naive O(n^2) Bernoulli trial per pair, this walks the n*n
// grid of candidate pairs by geometric skip distance: the number of
// non-edges between consecutive edges is itself geometrically distributed
// with parameter p, so sampling skip lengths directly costs O(m) draws
// instead of O(n^2) coin flips. No geometric-distribution sampler exists in
// this module's dependency pack, so the inverse-CDF closed form is inlined
// rather than reaching for a heavier stats package; it needs nothing beyond
// a single uniform draw per skip.
func GNP(n int, p float64, opts ...Option) (int, []graph.Edge, error) {
	if n < minGNPNodes {
		return 0, nil, fmt.Errorf("GNP: n=%d < min=%d: %w", n, minGNPNodes, ErrTooFewNodes)
	}
	if p < 0.0 || p > 1.0 {
		return 0, nil, fmt.Errorf("GNP: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0.0 && p < 1.0 {
		return 0, nil, fmt.Errorf("GNP: %w", ErrNeedRandSource)
	}

	var edges []graph.Edge
	if p == 0.0 {
		return n, edges, nil
	}
	if p == 1.0 {
		return Complete(n, opts...)
	}

	logNotP := math.Log(1.0 - p)
	end := uint64(n) * uint64(n)
	var cur uint64
	for {
		skip := geometricSkip(cfg.rng, logNotP)
		next := cur + 1 + skip
		if next < cur { // overflow guard: cur wrapped past uint64 max
			break
		}
		cur = next
		if cur > end {
			break
		}

		idx := cur - 1
		u := int(idx / uint64(n))
		v := int(idx % uint64(n))
		if u == v && !cfg.loops {
			continue
		}
		edges = append(edges, graph.Edge{Tail: u, Head: v})
	}
	return n, edges, nil
}

// geometricSkip draws the number of failures before the next success under
// a Bernoulli(p) process, via inverse transform sampling:
// P(skip >= k) = (1-p)^k, so skip = floor(ln(U) / ln(1-p)) for U ~ Uniform(0,1).
func geometricSkip(rng interface{ Float64() float64 }, logNotP float64) uint64 {
	u := rng.Float64()
	for u == 0 { // ln(0) is -Inf; redraw the zero-probability edge case
		u = rng.Float64()
	}
	skip := math.Log(u) / logNotP
	if skip < 0 {
		return 0
	}
	return uint64(skip)
}
