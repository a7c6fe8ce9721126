package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fwdindex/core"
)

// Write emits g in the adjacency format: the parameter line, then one line
// per node with neighbours, in sorted node order with neighbours in
// adjacency order. Each edge is written from both ends; Parse stores it once.
// Isolated nodes cannot be expressed in this format and are omitted.
func Write(w io.Writer, g *core.Graph, p Params) error {
	if g == nil {
		return core.ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", p.MaxIterations, p.TabuSize); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}
	for _, id := range g.Nodes() {
		nbrs := g.Neighbors(id)
		if len(nbrs) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s %s\n", id, strings.Join(nbrs, " ")); err != nil {
			return fmt.Errorf("graphio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}

	return nil
}
