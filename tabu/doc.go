// Package tabu finds a start→goal path in a core.Graph with a tabu-search
// construction heuristic.
//
// What
//
//   - The walk starts at start and extends one hop per iteration.
//   - A neighbour is eligible only if it is not already on the current path
//     (no cycles) and not in the tabu list (short-term recency memory).
//   - Every eligible neighbour ties on the cost proxy len(path)+1, so the
//     randomised presentation order decides, except that the goal always wins
//     when it is eligible.
//   - The tabu list is a bounded FIFO of the most recently entered nodes;
//     when it grows past TabuSize the oldest entry is evicted.
//   - The first arrival at the goal ends the search. There is no restart and
//     no attempt to shorten the path afterwards.
//
// Why
//
//	The heuristic models locally-greedy, cycle-avoiding routing rather than
//	true shortest paths. It guarantees neither optimality nor completeness.
//
// Failure is data
//
//	When the walk gets stuck or MaxIterations runs out, Search returns
//	Result{Path: [start], Cost: Infinity} and a nil error. Errors are reserved
//	for misuse: a nil graph (ErrGraphNil) or an invalid option
//	(ErrOptionViolation).
//
// Randomness
//
//	Neighbour order is shuffled through a RandSource. *math/rand.Rand
//	satisfies it. Without WithRand/WithSeed each call uses a fresh time-seeded
//	source, so repeated runs may differ. Pass WithSeed for reproducible output,
//	or a custom RandSource in tests. A RandSource is not safe for concurrent
//	use; give every goroutine its own (see DeriveSeed).
//
// Complexity
//
//   - Time:   O(I · Δ) where I = MaxIterations and Δ = maximum degree
//     (tabu membership is O(TabuSize) per neighbour).
//   - Memory: O(I + TabuSize).
//
// Usage
//
//	res, err := tabu.Search(g, "A", "C",
//	    tabu.WithMaxIterations(100),
//	    tabu.WithTabuSize(5),
//	    tabu.WithSeed(42),
//	)
//	if err != nil {
//	    // nil graph or bad option
//	}
//	if !res.Found() {
//	    // no path within the budget
//	}
package tabu
