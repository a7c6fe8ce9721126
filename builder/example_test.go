// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/fwdindex/builder"
)

// ExampleWheel builds W_5 with lettered vertices.
func ExampleWheel() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)},
		builder.Wheel(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range g.Nodes() {
		fmt.Println(id, g.Neighbors(id))
	}
	// Output:
	// A [B C D E]
	// B [A C E]
	// C [A B D]
	// D [A C E]
	// E [A D B]
}
