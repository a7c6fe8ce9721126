// SPDX-License-Identifier: MIT
// Package: fwdindex/builder
//
// impl_star.go - Star and Complete constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fwdindex/core"
)

// Star returns a Constructor for a star of n vertices: hub idFn(0) and
// leaves idFn(1) … idFn(n-1), spokes in leaf order (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if n > MaxVertices {
			return fmt.Errorf("%s: n=%d: %w", MethodStar, n, ErrTooLarge)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, MethodStar, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n, edges (i,j) with i < j in
// row-major order (n ≥ 1; K_1 is a single isolated vertex).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if n > MaxVertices {
			return fmt.Errorf("%s: n=%d: %w", MethodComplete, n, ErrTooLarge)
		}
		for i := 0; i < n; i++ {
			if err := addVertex(g, MethodComplete, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, MethodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
