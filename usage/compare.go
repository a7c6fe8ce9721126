package usage

import (
	"github.com/katalvlaran/fwdindex/bfs"
	"github.com/katalvlaran/fwdindex/core"
	"github.com/katalvlaran/fwdindex/router"
)

// Comparison summarises a routing table against exact hop distances.
type Comparison struct {
	// Pairs is the number of off-diagonal pairs examined.
	Pairs int `json:"pairs" yaml:"pairs"`

	// Found counts pairs the search reached.
	Found int `json:"found" yaml:"found"`

	// Unreachable counts pairs with no path in the graph at all.
	Unreachable int `json:"unreachable" yaml:"unreachable"`

	// Missed lists pairs that are connected but were not reached.
	Missed []router.Pair `json:"missed,omitempty" yaml:"missed,omitempty"`

	// Optimal counts found routes whose cost equals the hop distance.
	Optimal int `json:"optimal" yaml:"optimal"`

	// TotalStretch sums cost - distance over found routes.
	TotalStretch int `json:"total_stretch" yaml:"total_stretch"`

	// MaxStretch is the largest single cost - distance.
	MaxStretch int `json:"max_stretch" yaml:"max_stretch"`
}

// CompareShortest runs one BFS per node of g and compares every stored
// off-diagonal route with the hop distance. Pairs missing from table count
// as not reached.
func CompareShortest(g *core.Graph, table *router.Table) (*Comparison, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if table == nil {
		return nil, ErrTableNil
	}

	c := &Comparison{}
	nodes := g.Nodes()
	for _, s := range nodes {
		dist, err := bfs.Distances(g, s)
		if err != nil {
			return nil, err
		}
		for _, t := range nodes {
			if s == t {
				continue
			}
			c.Pairs++
			d, connected := dist[t]
			r, ok := table.Route(s, t)
			found := ok && r.Found()

			switch {
			case !connected:
				c.Unreachable++
			case !found:
				c.Missed = append(c.Missed, router.Pair{Start: s, Goal: t})
			default:
				c.Found++
				stretch := r.Cost - d
				if stretch == 0 {
					c.Optimal++
				}
				c.TotalStretch += stretch
				if stretch > c.MaxStretch {
					c.MaxStretch = stretch
				}
			}
		}
	}

	return c, nil
}
