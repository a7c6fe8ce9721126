// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/fwdindex/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe
// and every neighbour appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id)))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Neighbors("X"), num)
	require.Equal(t, num, g.EdgeCount())
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentReaders validates that concurrent Neighbors/Nodes/Clone calls
// do not race with each other.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge("A", fmt.Sprintf("V%d", i)))
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_ = g.Neighbors("A")
			_ = g.Nodes()
			_ = g.Clone()
		}()
	}
	wg.Wait()
}
