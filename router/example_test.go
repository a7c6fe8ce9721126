package router_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fwdindex/core"
	"github.com/katalvlaran/fwdindex/router"
)

// ExampleCompute routes every pair of the line A–B–C.
func ExampleCompute() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")

	table, err := router.Compute(context.Background(), g, router.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	table.Each(func(p router.Pair, r router.Route) {
		fmt.Printf("%s→%s %v\n", p.Start, p.Goal, r.Path)
	})
	// Output:
	// A→A [A]
	// A→B [A B]
	// A→C [A B C]
	// B→A [B A]
	// B→B [B]
	// B→C [B C]
	// C→A [C B A]
	// C→B [C B]
	// C→C [C]
}
