package mcmc

import (
	"math/rand"

	"github.com/katalvlaran/negcycle/oracle"
	"github.com/katalvlaran/negcycle/weight"
)

// Option customizes a Run call by mutating a config before the driver
// starts. Constructors validate and panic on meaningless inputs.
type Option[T weight.Numeric] func(*config[T])

// WithBounds sets the inclusive weight domain [min, max] proposals are
// drawn from. If max < min, Run returns ErrInvalidBounds.
func WithBounds[T weight.Numeric](min, max T) Option[T] {
	return func(c *config[T]) {
		c.min, c.max = min, max
	}
}

// WithRoundsPerEdge sets the proposal budget as a multiple of the edge
// count: k >= 0 runs floor(k*m) independent proposals; k < 0 runs a single
// sweep that visits every edge once in random order, attempting to lower
// each to the configured minimum.
func WithRoundsPerEdge[T weight.Numeric](k float64) Option[T] {
	return func(c *config[T]) {
		c.roundsPerEdge = k
	}
}

// WithSeed creates a deterministic *rand.Rand from seed.
func WithSeed[T weight.Numeric](seed int64) Option[T] {
	return func(c *config[T]) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand[T weight.Numeric](r *rand.Rand) Option[T] {
	if r == nil {
		panic("mcmc: WithRand(nil)")
	}
	return func(c *config[T]) {
		c.rng = r
	}
}

// WithOracle selects the feasibility oracle. Panics on nil; if never
// called, Run defaults to a bidirectional Dijkstra oracle sized to the
// graph.
func WithOracle[T weight.Numeric](o oracle.Oracle[T]) Option[T] {
	if o == nil {
		panic("mcmc: WithOracle(nil)")
	}
	return func(c *config[T]) {
		c.oracle = o
	}
}

// WithInit selects the initialization policy. Default is Max.
func WithInit[T weight.Numeric](p InitPolicy) Option[T] {
	return func(c *config[T]) {
		c.init = p
	}
}

// WithVerify enables a Bellman-Ford cross-check of feasibility before the
// first proposal and after the last, returning ErrInfeasibleStart or
// ErrInfeasibleResult if either fails.
func WithVerify[T weight.Numeric](enabled bool) Option[T] {
	return func(c *config[T]) {
		c.verify = enabled
	}
}

// WithHooks installs observability callbacks. The zero value disables all
// callbacks.
func WithHooks[T weight.Numeric](h Hooks[T]) Option[T] {
	return func(c *config[T]) {
		c.hooks = h
	}
}
