// SPDX-License-Identifier: MIT
// Package: negcycle/generators
//
package generators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/negcycle/graph"
)

const minRHGNodes = 2

// RHG samples a random hyperbolic graph: each node gets a random point in a
// hyperbolic disk of the given radius (angle uniform, radial coordinate
// density controlled by alpha), and two nodes are joined when their
// hyperbolic distance is below the disk radius. Exactly one of radius or
// avgDeg must be set; avgDeg is converted to a radius via a closed-form
// bisection search on the expected-degree formula for this distribution.
//
// A distributed implementation of this model typically partitions nodes
// into angular bands with per-band binary search so the whole generator
// runs in roughly O(n log n); that indexing is a throughput optimization
// orthogonal to which edges get produced. This constructor tests every
// pair directly instead, an O(n^2) simplification that yields the
// identical edge distribution for a given coordinate sample, since these
// graphs only need to be large enough to benchmark a shortest-path oracle,
// not to scale generation itself.
//
// prob controls whether an included pair becomes one arc or a pair of
// antiparallel arcs: 0 always picks one direction uniformly at random,
// 1 always includes both.
func RHG(n int, alpha float64, radius, avgDeg *float64, prob float64, opts ...Option) (int, []graph.Edge, error) {
	if n < minRHGNodes {
		return 0, nil, fmt.Errorf("RHG: n=%d < min=%d: %w", n, minRHGNodes, ErrTooFewNodes)
	}
	if alpha <= 0 {
		return 0, nil, fmt.Errorf("RHG: alpha=%.4f must be > 0: %w", alpha, ErrInvalidParams)
	}
	if (radius == nil) == (avgDeg == nil) {
		return 0, nil, fmt.Errorf("RHG: specify exactly one of radius, avgDeg: %w", ErrInvalidParams)
	}
	if prob < 0 || prob > 1 {
		return 0, nil, fmt.Errorf("RHG: prob=%.4f not in [0,1]: %w", prob, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return 0, nil, fmt.Errorf("RHG: %w", ErrNeedRandSource)
	}
	rng := cfg.rng

	r := 0.0
	if radius != nil {
		r = *radius
	} else {
		r = targetRadius(float64(n), *avgDeg, alpha)
	}

	type coord struct {
		phi, cosh, sinh float64
	}
	coords := make([]coord, n)
	minH := math.Nextafter(1.0, 2.0)
	maxH := math.Cosh(alpha * r)
	for i := 0; i < n; i++ {
		phi := rng.Float64() * 2 * math.Pi
		h := minH + rng.Float64()*(maxH-minH)
		rad := math.Acosh(h) / alpha
		coords[i] = coord{phi: phi, cosh: math.Cosh(rad), sinh: math.Sinh(rad)}
	}

	radiusCosh := math.Cosh(r)
	decide := func() (fwd, bwd bool) {
		sample := rng.Float64()
		if sample <= prob {
			return true, true
		}
		if sample <= (1.0+prob)/2.0 {
			return true, false
		}
		return false, true
	}

	var edges []graph.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := coords[i], coords[j]
			distCosh := a.cosh*b.cosh - a.sinh*b.sinh*math.Cos(a.phi-b.phi)
			if distCosh >= radiusCosh {
				continue
			}
			fwd, bwd := decide()
			if fwd {
				edges = append(edges, graph.Edge{Tail: i, Head: j})
			}
			if bwd {
				edges = append(edges, graph.Edge{Tail: j, Head: i})
			}
		}
	}
	return n, edges, nil
}

// targetRadius binary-searches for the disk radius yielding the requested
// average degree, mirroring get_target_radius's expected-degree closed form.
func targetRadius(n, k, alpha float64) float64 {
	gamma := 2*alpha + 1
	xiInv := (gamma - 2) / (gamma - 1)
	v := k * (math.Pi / 2) * xiInv * xiInv
	current := 2 * math.Log(n/v)
	lower, upper := current/2, current*2

	expectedDegree := func(rad float64) float64 {
		xi := (gamma - 1) / (gamma - 2)
		first := math.Exp(-rad / 2)
		second := math.Exp(-alpha*rad) * (alpha * (rad / 2) * ((math.Pi/4)*(1/alpha)*(1/alpha)-(math.Pi-1)*(1/alpha)+(math.Pi-2)) - 1)
		return (2 / math.Pi) * xi * xi * n * (first + second)
	}

	for iter := 0; iter < 200; iter++ {
		mid := (lower + upper) / 2
		deg := expectedDegree(mid)
		if math.Abs(deg-k) < 1e-5 {
			return mid
		}
		if deg < k {
			upper = mid
		} else {
			lower = mid
		}
	}
	return (lower + upper) / 2
}
