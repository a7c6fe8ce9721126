// Package dfs implements depth-first traversal and connected components on
// a core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every component
//   - Components: partitions the vertices into connected components.
//
// Why:
//   - Explain unreachable pairs: a route can only exist inside a component,
//     so a pair split across components is unreachable for any router.
//   - Sanity-check generated topologies (a wheel or hypercube is connected).
//
// Complexity:
//
//   - DFS:        O(V + E) time, O(V) memory (recursion + maps)
//   - Components: O(V log V + E) time (sorted output)
//
// Neighbours are explored in adjacency order, so results are deterministic.
package dfs
