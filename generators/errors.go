// SPDX-License-Identifier: MIT
// Package: negcycle/generators
//
package generators

import "errors"

// ErrTooFewNodes indicates n is smaller than the minimum a constructor needs.
var ErrTooFewNodes = errors.New("generators: too few nodes")

// ErrInvalidProbability indicates a probability or density parameter fell
// outside its required domain.
var ErrInvalidProbability = errors.New("generators: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was called without a
// resolved RNG (WithSeed/WithRand never applied).
var ErrNeedRandSource = errors.New("generators: rng is required")

// ErrInvalidParams indicates a parameter combination that has no valid
// resolution (e.g. DSF's alpha+beta > 1, or specifying both RHG radius and
// average degree instead of exactly one).
var ErrInvalidParams = errors.New("generators: invalid parameter combination")

// ErrFileFormat indicates a malformed line in an edge-list input file.
var ErrFileFormat = errors.New("generators: malformed edge-list line")
