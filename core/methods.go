// Package core: Graph method implementations.
//
// Mutations take the write lock, queries the read lock. Adjacency is a map of
// ordered slices, so neighbour order is exactly the order edges were added.

package core

import (
	"fmt"
	"sort"
)

const (
	edgeIDPrefix = "e"
)

// AddVertex registers id as a vertex with no neighbours.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether id is a vertex of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// AddEdge registers u and v as mutually adjacent, creating either vertex if
// absent. Calling it twice for the same pair appends a second entry to both
// neighbour lists; AddEdge is not idempotent.
//
// Returns ErrEmptyVertexID or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, u)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)

	g.nextEdgeID++
	g.edges = append(g.edges, Edge{
		ID:   fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		From: u,
		To:   v,
	})

	g.adjacency[u] = append(g.adjacency[u], v)
	// loops are listed once
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], u)
	}

	return nil
}

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, n := range g.adjacency[u] {
		if n == v {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of id's neighbour list in insertion order.
// Unknown vertices yield a nil slice; Neighbors never fails.
// Callers may reorder the returned slice freely.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok || len(nbrs) == 0 {
		return nil
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out
}

// Degree returns the length of id's neighbour list (parallel edges counted),
// or 0 for an unknown vertex.
// Complexity: O(1).
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// Nodes returns every vertex ID in ascending lexical order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// Edges returns every edge once, sorted by the unordered endpoint pair and
// then by creation order. Parallel edges are all present.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	g.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		ai, bi := orderedPair(out[i])
		aj, bj := orderedPair(out[j])
		if ai != aj {
			return ai < aj
		}
		return bi < bj
	})

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns |E|, parallel edges included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clone returns a deep copy that shares no storage with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		adjacency:  make(map[string][]string, len(g.adjacency)),
		edges:      make([]Edge, len(g.edges)),
	}
	for id, nbrs := range g.adjacency {
		cp := make([]string, len(nbrs))
		copy(cp, nbrs)
		out.adjacency[id] = cp
	}
	copy(out.edges, g.edges)

	return out
}

// ensureVertex creates an empty adjacency entry for id. Caller holds g.mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = []string{}
	}
}

// orderedPair returns e's endpoints as (min, max).
func orderedPair(e Edge) (string, string) {
	if e.From <= e.To {
		return e.From, e.To
	}
	return e.To, e.From
}
