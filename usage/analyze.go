package usage

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/fwdindex/core"
	"github.com/katalvlaran/fwdindex/router"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Sentinel errors for Analyze and CompareShortest.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("usage: graph is nil")

	// ErrTableNil is returned if a nil routing table is passed.
	ErrTableNil = errors.New("usage: routing table is nil")
)

var tracer = otel.Tracer("fwdindex.usage")

// EdgeLoad is the crossing count of one unordered node pair, U < V.
type EdgeLoad struct {
	U    string `json:"u" yaml:"u"`
	V    string `json:"v" yaml:"v"`
	Load int    `json:"load" yaml:"load"`
}

// Result is the edge-usage analysis of one routing table.
type Result struct {
	// Nodes is the sorted node order indexing Matrix.
	Nodes []string

	// Index maps a node to its row/column.
	Index map[string]int

	Matrix *Matrix

	// Crossings is the strict upper triangle of Matrix, row-major.
	Crossings []int

	// MaxCrossing is max(Crossings), or 0 when Crossings is empty.
	MaxCrossing int
}

// Analyze counts how many stored paths of table cross each node pair of g.
// Table entries for nodes outside g, and path steps through such nodes, are
// ignored. Returns ErrGraphNil or ErrTableNil only.
func Analyze(g *core.Graph, table *router.Table) (*Result, error) {
	return AnalyzeContext(context.Background(), g, table)
}

// AnalyzeContext is Analyze with a span recorded under ctx.
func AnalyzeContext(ctx context.Context, g *core.Graph, table *router.Table) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if table == nil {
		return nil, ErrTableNil
	}
	_, span := tracer.Start(ctx, "usage.Analyze")
	defer span.End()

	nodes := g.Nodes()
	index := make(map[string]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	m := NewMatrix(len(nodes))
	for _, s := range nodes {
		for _, t := range nodes {
			if s == t {
				continue
			}
			r, ok := table.Route(s, t)
			if !ok {
				continue
			}
			for k := 0; k+1 < len(r.Path); k++ {
				i, okA := index[r.Path[k]]
				j, okB := index[r.Path[k+1]]
				if !okA || !okB {
					continue
				}
				m.addSymmetric(i, j)
			}
		}
	}

	res := &Result{
		Nodes:     nodes,
		Index:     index,
		Matrix:    m,
		Crossings: m.UpperTriangle(),
	}
	for _, c := range res.Crossings {
		if c > res.MaxCrossing {
			res.MaxCrossing = c
		}
	}
	span.SetAttributes(
		attribute.Int("graph.nodes", len(nodes)),
		attribute.Int("usage.max_crossing", res.MaxCrossing),
	)

	return res, nil
}

// Load returns the crossing count between u and v, or 0 for unknown nodes.
func (r *Result) Load(u, v string) int {
	i, ok := r.Index[u]
	if !ok {
		return 0
	}
	j, ok := r.Index[v]
	if !ok {
		return 0
	}
	c, _ := r.Matrix.At(i, j)

	return c
}

// Bottlenecks returns every node pair whose load equals MaxCrossing, in
// matrix order. Empty when MaxCrossing is 0.
func (r *Result) Bottlenecks() []EdgeLoad {
	var out []EdgeLoad
	if r.MaxCrossing == 0 {
		return out
	}
	r.eachUpper(func(u, v string, c int) {
		if c == r.MaxCrossing {
			out = append(out, EdgeLoad{U: u, V: v, Load: c})
		}
	})

	return out
}

// EdgeLoads returns the load of every distinct edge of g, heaviest first,
// ties in (U, V) order. Parallel edges appear once.
func (r *Result) EdgeLoads(g *core.Graph) []EdgeLoad {
	var out []EdgeLoad
	r.eachUpper(func(u, v string, c int) {
		if g.HasEdge(u, v) {
			out = append(out, EdgeLoad{U: u, V: v, Load: c})
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Load > out[j].Load
	})

	return out
}

// NonEdgeCells returns every pair with a positive count that is not an edge
// of g. A table produced by router.Compute always yields none.
func (r *Result) NonEdgeCells(g *core.Graph) []EdgeLoad {
	var out []EdgeLoad
	r.eachUpper(func(u, v string, c int) {
		if c > 0 && !g.HasEdge(u, v) {
			out = append(out, EdgeLoad{U: u, V: v, Load: c})
		}
	})

	return out
}

// eachUpper visits the strict upper triangle in row-major order.
func (r *Result) eachUpper(fn func(u, v string, c int)) {
	n := len(r.Nodes)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			fn(r.Nodes[i], r.Nodes[j], r.Crossings[k])
			k++
		}
	}
}
