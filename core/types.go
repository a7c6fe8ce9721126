// Package core defines the central Graph and Edge types together with the
// sentinel errors and the NewGraph constructor.
//
// All Graph methods take g.mu internally (write lock for mutation, read lock
// for queries), so a fully loaded graph may be shared by concurrent readers.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilGraph indicates that a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is one undirected connection between two vertices.
//
// ID is assigned in creation order ("e1", "e2", …). From is the endpoint that
// was passed first to AddEdge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A loop appears once in its vertex's neighbour list.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the adjacency map for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[string][]string, n)
		}
	}
}

// Graph is an undirected multigraph stored as ordered adjacency lists.
//
// adjacency[u] is the neighbour sequence of u in insertion order; a vertex
// with no edges maps to an empty (non-nil) slice so it is still a key.
// edges keeps every AddEdge call once, in creation order.
type Graph struct {
	mu sync.RWMutex // guards every field below

	allowLoops bool // allow self-loops

	nextEdgeID uint64              // edge ID generator
	adjacency  map[string][]string // vertex ID → neighbour IDs
	edges      []Edge              // creation-ordered edge catalog
}

// NewGraph creates an empty Graph with the given options.
// By default loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
