package weight

import (
	"math"
	"math/rand"
)

// Numeric is the type-set constraint every weight instantiation must
// satisfy. Restricting it to fixed-width signed integers and IEEE floats
// lets the compiler generate a dedicated, unboxed implementation of every
// generic function per instantiation: monomorphization at build time,
// not a runtime interface dispatch in the hot loop.
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Add returns a+b. For integer instantiations this wraps on overflow using
// Go's native twos-complement semantics; for float instantiations it
// follows IEEE 754 (saturates to ±Inf, may produce NaN on ∞-∞). Both
// behaviors are the platform-native ones for their respective types — no
// extra bookkeeping is added on top of the native operator.
func Add[T Numeric](a, b T) T { return a + b }

// Sub returns a-b under the same wrap/saturate rules as Add.
func Sub[T Numeric](a, b T) T { return a - b }

// Less reports whether a < b under the type's natural total order. Equal
// reduced costs are broken by node id by the oracle, not here — this
// function only knows about weight values.
func Less[T Numeric](a, b T) bool { return a < b }

// Domain bundles the pieces of the weight algebra that differ by
// instantiation: the +∞ sentinel and the uniform-in-[lo,hi] sampler. It is
// resolved once per run rather than re-derived on every proposal.
type Domain[T Numeric] struct {
	// Infinity is strictly greater than any representable weight in
	// [w_min, w_max] plus the sum of at most n such weights, for any n an
	// oracle will realistically encounter (n well below the type's range).
	Infinity T

	// Sample draws a value uniformly from the closed interval [lo, hi].
	// Float instantiations draw continuously; integer instantiations draw
	// uniformly from the inclusive integer range {lo, lo+1, ..., hi}.
	Sample func(rng *rand.Rand, lo, hi T) T
}

// NewDomain resolves a Domain for T. The type switch on the zero value
// happens exactly once, at MCMC-run setup, never inside the proposal loop.
func NewDomain[T Numeric]() Domain[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Domain[T]{
			Infinity: T(math.Inf(1)),
			Sample: func(rng *rand.Rand, lo, hi T) T {
				return lo + T(rng.Float64())*(hi-lo)
			},
		}
	case float64:
		return Domain[T]{
			Infinity: T(math.Inf(1)),
			Sample: func(rng *rand.Rand, lo, hi T) T {
				return lo + T(rng.Float64())*(hi-lo)
			},
		}
	case int32:
		return Domain[T]{
			Infinity: T(math.MaxInt32),
			Sample: func(rng *rand.Rand, lo, hi T) T {
				span := int64(hi) - int64(lo) + 1
				return T(int64(lo) + rng.Int63n(span))
			},
		}
	case int64:
		maxInt64 := int64(math.MaxInt64)
		return Domain[T]{
			Infinity: T(maxInt64),
			Sample: func(rng *rand.Rand, lo, hi T) T {
				span := int64(hi) - int64(lo) + 1
				if span <= 0 {
					// hi-lo+1 overflowed int64: the interval covers more than half
					// of int64, so rejection sampling over all of int64 ends quickly.
					for {
						if x := T(int64(rng.Uint64())); x >= lo && x <= hi {
							return x
						}
					}
				}
				return T(int64(lo) + rng.Int63n(span))
			},
		}
	default:
		// Numeric's type set is closed to the four cases above; unreachable
		// unless the constraint is widened without updating this switch.
		panic("weight: unsupported instantiation")
	}
}
