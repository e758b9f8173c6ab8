package mcmc

import (
	"math/rand"

	"github.com/katalvlaran/negcycle/oracle"
	"github.com/katalvlaran/negcycle/weight"
)

// config aggregates every knob Run reads. It is built once per call from
// the supplied Options and never mutated afterward.
type config[T weight.Numeric] struct {
	min, max      T
	roundsPerEdge float64
	rng           *rand.Rand
	oracle        oracle.Oracle[T]
	init          InitPolicy
	verify        bool
	hooks         Hooks[T]
}

func newConfig[T weight.Numeric]() config[T] {
	return config[T]{
		roundsPerEdge: defaultRoundsPerEdge,
		init:          Max,
	}
}

const defaultRoundsPerEdge = 1.0
