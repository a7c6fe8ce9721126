package tabu

import (
	"github.com/katalvlaran/fwdindex/core"
)

// walker encapsulates the mutable state of one search.
type walker struct {
	graph *core.Graph
	opts  Options
	rnd   RandSource
	goal  string

	path   []string
	onPath map[string]struct{}
	tabu   *tabuList
}

// Search walks from start towards goal on g and returns the first path that
// reaches goal, or the failure signal Result{Path: [start], Cost: Infinity}.
//
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for bad options.
// An unknown start has no neighbours and fails immediately; start == goal is
// not special-cased (callers treat it as the trivial path).
func Search(g *core.Graph, start, goal string, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	rnd := o.Rand
	if rnd == nil {
		rnd = newTimeSeeded()
	}

	w := &walker{
		graph:  g,
		opts:   o,
		rnd:    rnd,
		goal:   goal,
		path:   []string{start},
		onPath: map[string]struct{}{start: {}},
		tabu:   newTabuList(o.TabuSize),
	}

	return w.run(start), nil
}

// run executes at most MaxIterations extension steps.
func (w *walker) run(start string) Result {
	best := Result{Path: []string{start}, Cost: Infinity}
	current := start

	for it := 0; it < w.opts.MaxIterations; it++ {
		best.Iterations = it + 1

		next, ok := w.pick(current)
		if !ok {
			break
		}

		w.path = append(w.path, next)
		w.onPath[next] = struct{}{}
		w.tabu.Push(next)
		current = next

		if current == w.goal {
			cost := len(w.path) - 1
			if cost < best.Cost {
				best.Path = append([]string(nil), w.path...)
				best.Cost = cost
				break
			}
		}
	}

	return best
}

// pick shuffles current's neighbours and returns the selected successor.
// All eligible candidates share the cost proxy len(path)+1, so the first one
// in shuffled order wins unless the goal is eligible.
func (w *walker) pick(current string) (string, bool) {
	nbrs := w.graph.Neighbors(current)
	w.rnd.Shuffle(len(nbrs), func(i, j int) { nbrs[i], nbrs[j] = nbrs[j], nbrs[i] })

	var (
		next    string
		found   bool
		minCost = Infinity
	)
	for _, nbr := range nbrs {
		if _, seen := w.onPath[nbr]; seen {
			continue
		}
		if w.tabu.Contains(nbr) {
			continue
		}
		cost := len(w.path) + 1
		if cost < minCost || nbr == w.goal {
			minCost = cost
			next = nbr
			found = true
		}
	}

	return next, found
}
