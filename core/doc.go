// Package core provides the in-memory undirected Graph that every other
// fwdindex package consumes.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Undirected only: AddEdge(u,v) appends v to u's neighbour list and u to
//     v's neighbour list, so Neighbors(u) contains v iff Neighbors(v) contains u.
//   - Ordered neighbour lists: neighbours are returned in insertion order.
//     Routing heuristics shuffle a copy; the stored order is never mutated.
//   - Parallel edges are kept: calling AddEdge twice for the same pair yields
//     a duplicate entry in both lists (AddEdge is NOT idempotent).
//   - Self-loops are rejected unless the graph was built WithLoops().
//   - Deterministic catalogs: Nodes() and Edges() return sorted results.
//   - A single sync.RWMutex guards the adjacency map, so many goroutines may
//     read a loaded graph while routes are computed in parallel.
//
// Core Methods:
//
//	// Node lifecycle
//	AddVertex(id string) error        // O(1), idempotent
//	HasVertex(id string) bool         // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string) error        // O(1) amortized, not idempotent
//	HasEdge(u, v string) bool         // O(deg(u))
//
//	// Query
//	Neighbors(id string) []string     // O(deg), copy, insertion order, nil if unknown
//	Nodes() []string                  // O(V log V), sorted
//	Edges() []Edge                    // O(E log E), each undirected edge once
//	Degree(id string) int             // O(1)
//	VertexCount() int, EdgeCount() int
//
//	// Cloning
//	Clone() *Graph                    // O(V+E) deep copy
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrLoopNotAllowed  – self-loop when loops are disabled
//	ErrNilGraph        – nil receiver passed where a graph is required
package core
