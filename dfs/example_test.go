package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fwdindex/core"
	"github.com/katalvlaran/fwdindex/dfs"
)

// ExampleDFS demonstrates a depth-first traversal (post-order) on a diamond-shaped graph.
// Graph structure:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// Starting at "A", expected post-order: C E F D B A
func ExampleDFS() {
	g := core.NewGraph()
	for _, edge := range []struct{ U, V string }{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "E"}, {"D", "F"},
	} {
		_ = g.AddEdge(edge.U, edge.V)
	}

	res, err := dfs.DFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Order, " "))
	// Output: C E F D B A
}

// ExampleComponents splits two islands and a lone vertex.
func ExampleComponents() {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("x", "y")
	_ = g.AddVertex("z")

	comps, _ := dfs.Components(g)
	fmt.Println(comps)
	// Output: [[a b] [x y] [z]]
}
