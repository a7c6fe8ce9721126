// SPDX-License-Identifier: MIT

// Package builder generates the benchmark topologies used to study the
// forwarding index: wheels, hypercubes, de Bruijn graphs, stars and cycles,
// plus paths, complete graphs, grids and random sparse graphs.
//
// Every topology is a Constructor closure. BuildGraph creates a core.Graph,
// resolves the BuilderOptions once and runs the constructors in order:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Wheel(6))
//
// Vertex labels:
//
//   - Wheel, Star, Cycle, Path, Complete, Grid and RandomSparse label vertex i with
//     cfg.idFn(i) (decimal by default, override with WithIDScheme). Wheel and
//     Star put the hub at index 0; Grid numbers cells row-major.
//   - Hypercube labels vertices with d-bit binary strings ("000", "001", …).
//   - DeBruijn labels vertices with length-n words over the first k symbols
//     of "0123456789abcdefghijklmnopqrstuvwxyz".
//
// Edge order is fixed and documented per constructor, so neighbour lists (and
// therefore a seeded routing run) are reproducible.
//
// Errors:
//
//	ErrTooFewVertices      – size parameter below the constructor minimum
//	ErrInvalidProbability  – p outside [0,1]
//	ErrNeedRandSource      – RandomSparse with 0 < p < 1 and no WithSeed/WithRand
//	ErrTooLarge            – requested graph exceeds MaxVertices
//	ErrConstructFailed     – nil constructor passed to BuildGraph
package builder
