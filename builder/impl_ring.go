// SPDX-License-Identifier: MIT
// Package: fwdindex/builder
//
// impl_ring.go - Cycle, Path and Wheel constructors.
//
// Edge emission order:
//   - Cycle(n): (0,1), (1,2), …, (n-2,n-1), (n-1,0)
//   - Path(n):  (0,1), …, (n-2,n-1)
//   - Wheel(n): spokes (0,1) … (0,n-1), then rim (1,2) … (n-2,n-1), (n-1,1)

package builder

import (
	"fmt"

	"github.com/katalvlaran/fwdindex/core"
)

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if n > MaxVertices {
			return fmt.Errorf("%s: n=%d: %w", MethodCycle, n, ErrTooLarge)
		}

		return ring(g, cfg, MethodCycle, 0, n)
	}
}

// Path returns a Constructor for the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if n > MaxVertices {
			return fmt.Errorf("%s: n=%d: %w", MethodPath, n, ErrTooLarge)
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, MethodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: hub idFn(0) joined to every vertex of
// the rim cycle idFn(1) … idFn(n-1). n counts the hub, so n ≥ 4.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if n > MaxVertices {
			return fmt.Errorf("%s: n=%d: %w", MethodWheel, n, ErrTooLarge)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, MethodWheel, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return ring(g, cfg, MethodWheel, 1, n)
	}
}

// ring closes the cycle over indices [from, to).
func ring(g *core.Graph, cfg builderConfig, method string, from, to int) error {
	for i := from; i < to; i++ {
		next := i + 1
		if next == to {
			next = from
		}
		if err := addEdge(g, method, cfg.idFn(i), cfg.idFn(next)); err != nil {
			return err
		}
	}

	return nil
}
