// Package router provides options, the routing table and error definitions
// for all-pairs tabu routing.
package router

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/fwdindex/tabu"
	"go.uber.org/zap"
)

// Sentinel errors for Compute and Table.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("router: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("router: invalid option supplied")

	// ErrUnknownNode is returned by Table.Set for a node outside the table.
	ErrUnknownNode = errors.New("router: unknown node")
)

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds the per-pair search parameters and run-level knobs.
type Options struct {
	MaxIterations int
	TabuSize      int

	// Seed is honoured only when Seeded is true.
	Seed   int64
	Seeded bool

	// Workers is the maximum number of concurrent searches.
	Workers int

	// OnRoute runs after each off-diagonal search. With Workers > 1 it is
	// called from several goroutines and must be safe for concurrent use.
	OnRoute func(start, goal string, r tabu.Result)

	Logger *zap.Logger

	err error
}

// DefaultOptions returns the loader defaults, one worker, no seed and a
// no-op logger and hook.
func DefaultOptions() Options {
	return Options{
		MaxIterations: tabu.DefaultMaxIterations,
		TabuSize:      tabu.DefaultTabuSize,
		Workers:       1,
		OnRoute:       func(string, string, tabu.Result) {},
		Logger:        zap.NewNop(),
	}
}

// WithMaxIterations sets the per-pair step budget (n >= 0).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTabuSize sets the per-pair tabu capacity (n >= 0).
func WithTabuSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: TabuSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.TabuSize = n
	}
}

// WithSeed makes the whole table reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Seeded = true
	}
}

// WithWorkers bounds the number of concurrent searches.
//
//	n >= 1: use n goroutines
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnRoute registers a per-pair callback. nil is ignored.
func WithOnRoute(fn func(start, goal string, r tabu.Result)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRoute = fn
		}
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Pair is an ordered (start, goal) pair.
type Pair struct {
	Start string `json:"start" yaml:"start"`
	Goal  string `json:"goal" yaml:"goal"`
}

// Route is the stored outcome for one pair.
type Route struct {
	Path       []string `json:"path" yaml:"path"`
	Cost       int      `json:"cost" yaml:"cost"`
	Iterations int      `json:"iterations" yaml:"iterations"`
}

// Found reports whether the route reaches its goal.
func (r Route) Found() bool {
	return r.Cost != tabu.Infinity
}

// Table maps every ordered pair of its nodes to a Route.
// Compute returns a fully populated table; treat it as read-only.
type Table struct {
	nodes  []string
	index  map[string]int
	routes []Route // row-major, len(nodes)²
}

// NewTable returns a table over nodes (sorted and de-duplicated) whose
// diagonal holds trivial routes and whose other cells are unreached.
func NewTable(nodes []string) *Table {
	sorted := append([]string(nil), nodes...)
	sort.Strings(sorted)
	uniq := sorted[:0]
	for i, id := range sorted {
		if i > 0 && id == sorted[i-1] {
			continue
		}
		uniq = append(uniq, id)
	}

	n := len(uniq)
	t := &Table{
		nodes:  uniq,
		index:  make(map[string]int, n),
		routes: make([]Route, n*n),
	}
	for i, id := range uniq {
		t.index[id] = i
		for j := range uniq {
			if i == j {
				t.routes[i*n+j] = Route{Path: []string{id}}
				continue
			}
			t.routes[i*n+j] = Route{Path: []string{id}, Cost: tabu.Infinity}
		}
	}

	return t
}

// Set stores r for (start, goal). Returns ErrUnknownNode if either node is
// not part of the table.
func (t *Table) Set(start, goal string, r Route) error {
	i, ok := t.index[start]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, start)
	}
	j, ok := t.index[goal]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, goal)
	}
	t.routes[i*len(t.nodes)+j] = r

	return nil
}

// Route returns the stored route for (start, goal) and whether both nodes
// belong to the table.
func (t *Table) Route(start, goal string) (Route, bool) {
	i, ok := t.index[start]
	if !ok {
		return Route{}, false
	}
	j, ok := t.index[goal]
	if !ok {
		return Route{}, false
	}

	return t.routes[i*len(t.nodes)+j], true
}

// Path returns a copy of the stored path for (start, goal), or nil if either
// node is unknown.
func (t *Table) Path(start, goal string) []string {
	r, ok := t.Route(start, goal)
	if !ok {
		return nil
	}

	return append([]string(nil), r.Path...)
}

// Nodes returns the table's node order (sorted).
func (t *Table) Nodes() []string {
	return append([]string(nil), t.nodes...)
}

// Len returns the number of stored entries, diagonal included.
func (t *Table) Len() int {
	return len(t.routes)
}

// Each calls fn for every entry in (start, goal) lexical order. The Route's
// Path aliases table storage and must not be modified.
func (t *Table) Each(fn func(p Pair, r Route)) {
	n := len(t.nodes)
	for i, s := range t.nodes {
		for j, g := range t.nodes {
			fn(Pair{Start: s, Goal: g}, t.routes[i*n+j])
		}
	}
}

// Unreached lists every off-diagonal pair whose search failed, in order.
func (t *Table) Unreached() []Pair {
	var out []Pair
	t.Each(func(p Pair, r Route) {
		if p.Start != p.Goal && !r.Found() {
			out = append(out, p)
		}
	})

	return out
}

// Reached counts off-diagonal pairs whose search succeeded.
func (t *Table) Reached() int {
	n := 0
	t.Each(func(p Pair, r Route) {
		if p.Start != p.Goal && r.Found() {
			n++
		}
	})

	return n
}
