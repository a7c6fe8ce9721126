// SPDX-License-Identifier: MIT
// Package: fwdindex/builder
//
// impl_grid.go - rectangular lattice constructors.
//
// Vertex (r, c) gets idFn(r*cols + c). Edge emission order is row-major; each
// cell emits its right neighbour, then its lower one, then (Conn8 only) its
// two lower diagonals.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fwdindex/core"
)

// Connectivity selects which cells of a grid are adjacent.
type Connectivity int

const (
	// Conn4 joins orthogonal neighbours (von Neumann).
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal neighbours (Moore).
	Conn8
)

// Grid returns a Constructor for a rows×cols lattice. With Conn4 it is the
// grid graph P_rows □ P_cols; with Conn8 the king's graph.
// Complexity: O(rows·cols).
func Grid(rows, cols int, conn Connectivity) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridSide || cols < MinGridSide {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", MethodGrid, rows, cols, MinGridSide, ErrTooFewVertices)
		}
		if rows > MaxVertices/cols {
			return fmt.Errorf("%s: %dx%d: %w", MethodGrid, rows, cols, ErrTooLarge)
		}
		if rows*cols < 2 {
			return fmt.Errorf("%s: %dx%d has a single cell: %w", MethodGrid, rows, cols, ErrTooFewVertices)
		}

		offsets := [][2]int{{0, 1}, {1, 0}}
		if conn == Conn8 {
			offsets = append(offsets, [2]int{1, 1}, [2]int{1, -1})
		}
		id := func(r, c int) string { return cfg.idFn(r*cols + c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				for _, off := range offsets {
					nr, nc := r+off[0], c+off[1]
					if nr >= rows || nc < 0 || nc >= cols {
						continue
					}
					if err := addEdge(g, MethodGrid, id(r, c), id(nr, nc)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
