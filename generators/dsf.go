// SPDX-License-Identifier: MIT
// Package: negcycle/generators
//
package generators

import (
	"fmt"

	"github.com/katalvlaran/negcycle/graph"
)

const minDSFNodes = 2

// DSF samples a directed scale-free graph by preferential-attachment growth
// (the same process behind NetworkX's scale_free_graph): starting from a
// single node, each step either adds a new node with an edge to an
// existing one (biased by in/out-degree) or adds an edge between two
// existing nodes, chosen by the three regimes alpha, beta = 1-alpha-gamma,
// gamma. deltaOut/deltaIn are the additive smoothing terms in the
// preferential-attachment weights; both must be positive so early nodes
// with zero degree still have a chance of being chosen.
//
// alpha+beta must not exceed 1 (the remainder is gamma, the "add node with
// incoming edge" regime). WithSeed/WithRand is required.
func DSF(n int, alpha, beta, deltaOut, deltaIn float64, opts ...Option) (int, []graph.Edge, error) {
	if n < minDSFNodes {
		return 0, nil, fmt.Errorf("DSF: n=%d < min=%d: %w", n, minDSFNodes, ErrTooFewNodes)
	}
	if alpha < 0 || beta < 0 || alpha+beta > 1.0 {
		return 0, nil, fmt.Errorf("DSF: alpha=%.4f beta=%.4f violates alpha,beta>=0, alpha+beta<=1: %w",
			alpha, beta, ErrInvalidParams)
	}
	if deltaOut <= 0 || deltaIn <= 0 {
		return 0, nil, fmt.Errorf("DSF: deltaOut=%.4f deltaIn=%.4f must be > 0: %w", deltaOut, deltaIn, ErrInvalidParams)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return 0, nil, fmt.Errorf("DSF: %w", ErrNeedRandSource)
	}
	rng := cfg.rng
	alphaPlusBeta := alpha + beta

	inDeg := make([]float64, n)
	outDeg := make([]float64, n)
	seen := make(map[[2]int]struct{})
	var edges []graph.Edge

	chooseNode := func(cur int, deg []float64, delta, target float64) int {
		cumsum := 0.0
		node := 0
		for node < cur-1 {
			cumsum += delta + deg[node]
			if target < cumsum {
				break
			}
			node++
		}
		return node
	}

	curNodes := 1
	for curNodes < n {
		denomIn := float64(len(edges)) + deltaIn*float64(curNodes)
		denomOut := float64(len(edges)) + deltaOut*float64(curNodes)
		sampled := rng.Float64()

		var u, v int
		switch {
		case sampled < alpha:
			v = chooseNode(curNodes, inDeg, deltaIn, denomIn*rng.Float64())
			u = curNodes
			curNodes++
		case sampled < alphaPlusBeta:
			u = chooseNode(curNodes, outDeg, deltaOut, denomOut*rng.Float64())
			v = chooseNode(curNodes, inDeg, deltaIn, denomIn*rng.Float64())
		default:
			u = chooseNode(curNodes, outDeg, deltaOut, denomOut*rng.Float64())
			v = curNodes
			curNodes++
		}

		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		outDeg[u]++
		inDeg[v]++
		edges = append(edges, graph.Edge{Tail: u, Head: v})
	}
	return n, edges, nil
}
