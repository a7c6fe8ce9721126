// SPDX-License-Identifier: MIT
// Package: fwdindex/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that RandomSparse needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooLarge indicates that the requested topology exceeds MaxVertices.
var ErrTooLarge = errors.New("builder: graph too large")

// ErrConstructFailed indicates a programmer error such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
