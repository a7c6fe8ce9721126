// Package report assembles a routing table and its usage analysis into a
// Report and renders it as text tables, JSON or YAML.
package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/fwdindex/router"
	"github.com/katalvlaran/fwdindex/usage"
)

// Params records the search parameters of a run.
type Params struct {
	MaxIterations int   `json:"max_iterations" yaml:"max_iterations"`
	TabuSize      int   `json:"tabu_size" yaml:"tabu_size"`
	Seed          int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	Workers       int   `json:"workers" yaml:"workers"`
}

// RouteEntry is one off-diagonal route. Cost is nil when the goal was not
// reached.
type RouteEntry struct {
	Start string   `json:"start" yaml:"start"`
	Goal  string   `json:"goal" yaml:"goal"`
	Path  []string `json:"path" yaml:"path"`
	Cost  *int     `json:"cost" yaml:"cost"`
}

// Report is the serialisable outcome of one analysis.
type Report struct {
	RunID          string            `json:"run_id" yaml:"run_id"`
	Source         string            `json:"source,omitempty" yaml:"source,omitempty"`
	GeneratedAt    time.Time         `json:"generated_at" yaml:"generated_at"`
	ElapsedSeconds float64           `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Params         Params            `json:"params" yaml:"params"`
	Nodes          []string          `json:"nodes" yaml:"nodes"`
	Routes         []RouteEntry      `json:"routes" yaml:"routes"`
	Matrix         [][]int           `json:"matrix" yaml:"matrix"`
	Crossings      []int             `json:"crossings" yaml:"crossings"`
	MaxCrossing    int               `json:"max_crossing" yaml:"max_crossing"`
	Bottlenecks    []usage.EdgeLoad  `json:"bottlenecks" yaml:"bottlenecks"`
	Unreached      []router.Pair     `json:"unreached" yaml:"unreached"`
	Components     [][]string        `json:"components,omitempty" yaml:"components,omitempty"`
	Comparison     *usage.Comparison `json:"comparison,omitempty" yaml:"comparison,omitempty"`
}

// Meta carries run details that neither the table nor the analysis know.
type Meta struct {
	Source     string
	Params     Params
	Elapsed    time.Duration
	Comparison *usage.Comparison
	// Components lists connected components; nil when not computed.
	Components [][]string
}

// New builds a Report with a fresh run ID.
func New(table *router.Table, res *usage.Result, meta Meta) *Report {
	rep := &Report{
		RunID:          uuid.NewString(),
		Source:         meta.Source,
		GeneratedAt:    time.Now().UTC(),
		ElapsedSeconds: meta.Elapsed.Seconds(),
		Params:         meta.Params,
		Nodes:          res.Nodes,
		Crossings:      res.Crossings,
		MaxCrossing:    res.MaxCrossing,
		Bottlenecks:    res.Bottlenecks(),
		Unreached:      table.Unreached(),
		Comparison:     meta.Comparison,
		Components:     meta.Components,
	}
	if rep.Bottlenecks == nil {
		rep.Bottlenecks = []usage.EdgeLoad{}
	}
	if rep.Unreached == nil {
		rep.Unreached = []router.Pair{}
	}

	rep.Matrix = make([][]int, res.Matrix.Size())
	for i := range rep.Matrix {
		rep.Matrix[i] = res.Matrix.Row(i)
	}

	table.Each(func(p router.Pair, r router.Route) {
		if p.Start == p.Goal {
			return
		}
		e := RouteEntry{Start: p.Start, Goal: p.Goal, Path: r.Path}
		if r.Found() {
			cost := r.Cost
			e.Cost = &cost
		}
		rep.Routes = append(rep.Routes, e)
	})
	if rep.Routes == nil {
		rep.Routes = []RouteEntry{}
	}

	return rep
}
