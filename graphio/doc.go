// Package graphio reads and writes graph files.
//
// Adjacency format (Parse, Load, Write):
//
//	<max_iterations> <tabu_size>
//	<n1> <n2> [<n3> ...]
//	...
//
// The first line carries the search parameters as two non-negative integers.
// Every following non-blank line names a node followed by one or more of its
// neighbours; each listed neighbour becomes an undirected edge unless that
// edge is already present. A file therefore may list an edge once or from
// both ends. A source with no content yields the default parameters and an
// empty graph.
//
// Edge-list format (ParseEdgeList, LoadEdgeList):
//
//	five free-form preamble lines
//	<node count>
//	<edge count>
//	<u> <v>
//	...
//
// Nodes are numbered 1..count and all of them exist even when isolated.
//
// Errors are typed and each matches a sentinel through errors.Is:
//
//	*ConfigError   ErrConfig    bad parameter line
//	*FormatError   ErrFormat    malformed node or edge line (carries Line)
//	*NotFoundError ErrNotFound  missing file
package graphio
