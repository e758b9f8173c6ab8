package mcmc

import "errors"

// ErrNoEdges indicates the graph handed to Run has zero edges: there is
// nothing to propose over.
var ErrNoEdges = errors.New("mcmc: graph has no edges")

// ErrInvalidBounds indicates WithBounds was given max < min.
var ErrInvalidBounds = errors.New("mcmc: max weight is less than min weight")

// ErrRandRequired indicates Run was called without WithSeed or WithRand.
// Nothing in this package silently falls back to an unseeded source.
var ErrRandRequired = errors.New("mcmc: rng is required, call WithSeed or WithRand")

// ErrInfeasibleStart indicates the verifier (WithVerify) found a negative
// cycle already present after initialization, before any proposal ran.
var ErrInfeasibleStart = errors.New("mcmc: initial weighting has a negative cycle")

// ErrInfeasibleResult indicates the verifier found a negative cycle in the
// final weighting after the run completed — a bug in an oracle or its
// potential repair, never an expected outcome.
var ErrInfeasibleResult = errors.New("mcmc: resulting weighting has a negative cycle")
