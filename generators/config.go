// SPDX-License-Identifier: MIT
// Package: negcycle/generators
//
package generators

import "math/rand"

// config aggregates the knobs shared by every stochastic constructor: an
// RNG source and whether self-loops are permitted. Constructors return edge
// lists rather than mutate a live graph, so there is no id scheme or
// weight-function knob to carry here.
type config struct {
	rng   *rand.Rand
	loops bool
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
