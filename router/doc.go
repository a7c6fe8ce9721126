// Package router computes a route for every ordered pair of nodes of a
// core.Graph by running an independent tabu search per pair.
//
// Overview:
//
//   - For every start s and goal t taken from g.Nodes() (sorted), the table
//     stores a Route. The diagonal (s, s) is the trivial route [s] of cost 0
//     and is never searched.
//   - Every off-diagonal pair runs tabu.Search with fresh tabu memory and its
//     own random source. Nothing is shared between pairs.
//   - With WithSeed the source of pair k is seeded with tabu.DeriveSeed(seed, k),
//     so the table does not depend on how many workers ran or in which order
//     they finished. Without a seed a base seed is drawn from the clock once per
//     call and the same derivation applies.
//   - WithWorkers(n) fans pairs out to an errgroup limited to n goroutines.
//     Results land in a slice indexed by pair number, so no locking is needed
//     while the table is assembled.
//   - A failed search is data: the route holds [s] and cost tabu.Infinity and
//     is listed by Table.Unreached.
//
// Options:
//
//	WithMaxIterations(n)  // per-pair search budget (default 100)
//	WithTabuSize(n)       // per-pair tabu capacity (default 5)
//	WithSeed(seed)        // reproducible table
//	WithWorkers(n)        // n >= 1, default 1 (sequential)
//	WithOnRoute(fn)       // called once per searched pair
//	WithLogger(l)         // *zap.Logger, default zap.NewNop()
//
// Errors:
//
//	ErrGraphNil         – nil graph
//	ErrOptionViolation  – negative budget or tabu size, workers < 1
//	context errors      – ctx cancelled before every pair was searched
//
// Complexity: O(V² · MaxIterations · Δ) time, O(V² · L) memory where L is the
// mean stored path length.
package router
