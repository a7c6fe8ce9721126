// Package fwdindex estimates the forwarding index of a graph: route every
// ordered pair of nodes, count how many routes cross each edge, and report
// the most loaded edge.
//
// Routes come from a tabu-search construction heuristic, not a shortest-path
// algorithm, so the result is an estimate and, unless a seed is fixed, varies
// from run to run.
//
// Everything is organised in small subpackages:
//
//	core/       thread-safe undirected adjacency-list Graph
//	tabu/       single-pair tabu search with a bounded FIFO tabu list
//	router/     all-pairs routing (optionally concurrent) into a Table
//	usage/      usage matrix, crossing list, bottleneck and BFS comparison
//	bfs/        breadth-first traversal and hop distances
//	dfs/        depth-first traversal and connected components
//	graphio/    adjacency and edge-list file formats
//	builder/    wheel, hypercube, de Bruijn, star and friends
//	report/     text tables, JSON and YAML reports
//	pipeline/   one full analysis wired to metrics and logging
//	config/, logging/, metrics/   viper, zap and Prometheus plumbing
//
// Quick ASCII example:
//
//	A───B───C
//
// Routing all six ordered pairs crosses A─B four times (A→B, B→A, A→C,
// C→A) and B─C four times, so the forwarding index is 4.
//
// The fwdindex command (cmd/fwdindex) exposes analyze, generate and watch.
//
//	go install github.com/katalvlaran/fwdindex/cmd/fwdindex@latest
package fwdindex
