// Package bfs computes hop distances over a core.Graph by breadth-first
// search. fwdindex uses it as the exact baseline the tabu heuristic is
// measured against: a pair the heuristic failed on is a genuine miss only if
// BFS reaches the goal, and the stretch of a found route is its cost minus
// the BFS distance.
//
// Behaviour:
//
//   - Neighbours are visited in adjacency (insertion) order, so Order and
//     Parent are reproducible for a given graph.
//   - Parallel edges do not change distances; a vertex is enqueued once.
//   - MaxDepth > 0 stops expansion beyond that depth; 0 means no limit.
//   - OnVisit may abort the walk by returning an error.
//   - Ctx is checked once per dequeued vertex.
//
// Entry points:
//
//	BFS(g, start, opts...)      (*Result, error)  // full traversal record
//	Distances(g, start)         (map[string]int, error)
//	ShortestPath(g, start, dst) ([]string, error) // ErrNoPath when unreachable
//
// Errors:
//
//	ErrGraphNil            – nil graph
//	ErrStartVertexNotFound – start is not a vertex of g
//	ErrOptionViolation     – negative MaxDepth
//	ErrNoPath              – dst unreachable (ShortestPath, PathTo)
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
