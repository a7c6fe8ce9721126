// SPDX-License-Identifier: MIT
// Package: fwdindex/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n, p) constructor.
//
// Trial order is fixed (i ascending, then j > i ascending), so a given seed
// always yields the same edge set and the same neighbour order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fwdindex/core"
)

const (
	probMin = 0.0
	probMax = 1.0
)

// RandomSparse returns a Constructor that adds n vertices and includes each
// unordered pair independently with probability p. An RNG (WithSeed or
// WithRand) is required when 0 < p < 1.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if n > MaxVertices {
			return fmt.Errorf("%s: n=%d: %w", MethodRandomSparse, n, ErrTooLarge)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			if err := addVertex(g, MethodRandomSparse, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch p {
				case probMin:
					keep = false
				case probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, MethodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
