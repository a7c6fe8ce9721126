// SPDX-License-Identifier: MIT
// Package: fwdindex/builder
//
// constants.go - method tags and size limits shared by constructors.

package builder

// Method tags prefix constructor errors.
const (
	MethodWheel        = "Wheel"
	MethodStar         = "Star"
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodComplete     = "Complete"
	MethodHypercube    = "Hypercube"
	MethodDeBruijn     = "DeBruijn"
	MethodRandomSparse = "RandomSparse"
	MethodGrid         = "Grid"
)

// Minimum sizes.
const (
	MinWheelNodes     = 4 // rim C_{n-1} needs at least 3 vertices
	MinStarNodes      = 2
	MinCycleNodes     = 3
	MinPathNodes      = 2
	MinCompleteNodes  = 1
	MinHypercubeDim   = 1
	MinDeBruijnSymbol = 2
	MinDeBruijnLength = 1
	MinGridSide       = 1
)

// MaxVertices caps the generated graph size. All-pairs routing is quadratic
// in the vertex count, so larger graphs are not useful inputs.
const MaxVertices = 1 << 16

// deBruijnAlphabet supplies the symbols for DeBruijn labels.
const deBruijnAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
