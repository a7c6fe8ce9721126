// Package usage turns a routing table into an edge-usage matrix (the
// forwarding index of the routing) and reports its bottleneck.
//
// Given the sorted node order v0 < v1 < … < vN-1 of a graph and a table that
// routes every ordered pair, Analyze builds the N×N matrix M where M[i][j]
// counts how many stored paths traverse the edge {vi, vj}. Each consecutive
// pair (a, b) of every off-diagonal path adds one to M[a][b] and one to
// M[b][a], so M is symmetric and its diagonal stays zero.
//
// Because every ordered pair is routed, a single undirected edge is usually
// counted by both s→t and t→s. On the line A–B–C the edge A–B carries the
// routes A→B, B→A, A→C and C→A, so M[A][B] = 4.
//
// Derived values:
//
//	Crossings    – the strict upper triangle of M, row-major
//	MaxCrossing  – max(Crossings), 0 when fewer than two nodes
//	Bottlenecks  – every upper-triangle cell equal to MaxCrossing (> 0)
//	EdgeLoads    – the load of every true graph edge, heaviest first
//	NonEdgeCells – cells > 0 that are not graph edges (empty for valid tables)
//
// CompareShortest measures the heuristic against breadth-first distances:
// which failures were genuine misses and how much longer the found routes are.
//
// Complexity: Analyze is O(N² + ΣL) where ΣL is the total stored path length.
package usage
