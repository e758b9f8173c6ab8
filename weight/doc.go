// Package weight defines the numeric domain that edge weights and node
// potentials live in, and the handful of operations the rest of negcycle
// relies on: addition, subtraction, total order, a +∞ sentinel, and uniform
// sampling from a closed interval.
//
// Two families of instantiation are supported via the Numeric constraint:
// signed floating point (float32, float64) and signed fixed-width integers
// (int32, int64). Integer arithmetic wraps on overflow using Go's native
// twos-complement semantics; floating point arithmetic saturates to ±Inf per
// IEEE 754. Both choices are deliberate — see Add's doc comment — and the
// MCMC driver never depends on which one is in effect, only on total order
// and the triangle inequality.
package weight
