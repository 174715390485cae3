// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX); messages carry context via %w.
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, partition) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor exhausted its bounded attempts, or
// that BuildInput received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates an invalid non-topology size, e.g. a negative edge target.
var ErrBadSize = errors.New("builder: invalid size/length")
