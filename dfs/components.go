package dfs

import (
	"sort"

	"github.com/katalvlaran/fwdindex/core"
)

// Components returns the connected components of g. Each component is
// sorted, and components are ordered by their smallest vertex. An empty
// graph yields nil.
func Components(g *core.Graph) ([][]string, error) {
	res, err := DFS(g, "", WithFullTraversal())
	if err != nil {
		return nil, err
	}

	// Trees are rooted at unvisited vertices taken in sorted order, so every
	// root is the smallest vertex of its component.
	root := make(map[string]string, len(res.Visited))
	var find func(id string) string
	find = func(id string) string {
		if r, ok := root[id]; ok {
			return r
		}
		r := id
		if p, ok := res.Parent[id]; ok {
			r = find(p)
		}
		root[id] = r

		return r
	}

	index := make(map[string]int)
	var comps [][]string
	for _, id := range g.Nodes() {
		r := find(id)
		i, ok := index[r]
		if !ok {
			i = len(comps)
			index[r] = i
			comps = append(comps, nil)
		}
		comps[i] = append(comps[i], id)
	}
	for _, c := range comps {
		sort.Strings(c)
	}

	return comps, nil
}
