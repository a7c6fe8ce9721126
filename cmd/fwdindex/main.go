// Command fwdindex routes every node pair of a graph with tabu search and
// reports the resulting edge-usage matrix and its bottleneck.
//
// Usage:
//
//	fwdindex analyze graph.txt --seed 7 --workers 4 --format json
//	fwdindex generate wheel -n 12 > wheel.txt
//	fwdindex watch graph.txt
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "fwdindex:", err)
		stop()
		os.Exit(1)
	}
}
