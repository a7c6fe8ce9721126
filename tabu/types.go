// Package tabu provides options, results and error definitions for the
// tabu-search path heuristic.
package tabu

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for Search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("tabu: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tabu: invalid option supplied")
)

// Infinity is the cost reported when the goal was not reached.
const Infinity = math.MaxInt

// Defaults used when the caller does not override them. They match the
// values the graph-file loader falls back to for an empty source.
const (
	DefaultMaxIterations = 100
	DefaultTabuSize      = 5
)

// RandSource shuffles neighbour candidates. *math/rand.Rand satisfies it.
type RandSource interface {
	Shuffle(n int, swap func(i, j int))
}

// Option configures Search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds the search budget, tabu capacity and random source.
type Options struct {
	// MaxIterations bounds the number of extension steps. Zero means the
	// search fails immediately.
	MaxIterations int

	// TabuSize is the fixed capacity of the FIFO tabu list.
	TabuSize int

	// Rand shuffles neighbours. nil means a fresh time-seeded source.
	Rand RandSource

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultMaxIterations, DefaultTabuSize
// and no explicit random source.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		TabuSize:      DefaultTabuSize,
	}
}

// WithMaxIterations sets the step budget.
//
//	n >= 0: use n (0 yields immediate failure)
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTabuSize sets the tabu list capacity.
//
//	n >= 0: use n (0 disables short-term memory)
//	n < 0:  invalid option → ErrOptionViolation
func WithTabuSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: TabuSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.TabuSize = n
	}
}

// WithRand injects the random source used to order neighbours.
// A nil source is ignored.
func WithRand(r RandSource) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed makes the search reproducible by using a *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = NewRand(seed)
	}
}

// Result is the outcome of one Search call.
//
//   - Path: the walk from start to goal, or [start] if the goal was not reached.
//   - Cost: len(Path)-1 on success, Infinity otherwise.
//   - Iterations: extension steps actually attempted.
type Result struct {
	Path       []string
	Cost       int
	Iterations int
}

// Found reports whether the goal was reached.
func (r Result) Found() bool {
	return r.Cost != Infinity
}
