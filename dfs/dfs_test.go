package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fwdindex/core"
	"github.com/katalvlaran/fwdindex/dfs"
)

// buildChain creates a path graph N0–N1–…–N(n-1).
func buildChain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(core.NewGraph(), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_ChainPostOrder(t *testing.T) {
	res, err := dfs.DFS(buildChain(4), "N0")
	require.NoError(t, err)
	assert.Equal(t, []string{"N3", "N2", "N1", "N0"}, res.Order)
	assert.Equal(t, 3, res.Depth["N3"])
	assert.Equal(t, "N2", res.Parent["N3"])
	_, hasParent := res.Parent["N0"]
	assert.False(t, hasParent)
}

func TestDFS_Hooks(t *testing.T) {
	var pre, post []string
	_, err := dfs.DFS(buildChain(3), "N1",
		dfs.WithOnVisit(func(id string) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id string) error { post = append(post, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N0", "N2"}, pre)
	assert.Equal(t, []string{"N0", "N2", "N1"}, post)
}

func TestDFS_HookErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	res, err := dfs.DFS(buildChain(3), "N0",
		dfs.WithOnVisit(func(id string) error {
			if id == "N1" {
				return boom
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	assert.Nil(t, res.Order)

	_, err = dfs.DFS(buildChain(3), "N0", dfs.WithOnExit(func(string) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(buildChain(5), "N0", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	assert.False(t, res.Visited["N3"])
}

func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(buildChain(4), "N0",
		dfs.WithFilterNeighbor(func(id string) bool { return id != "N2" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N0"}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(buildChain(3), "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := buildChain(2)
	_ = g.AddEdge("X", "Y")
	_ = g.AddVertex("Z")

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N0", "Y", "X", "Z"}, res.Order)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("D", "B")
	_ = g.AddEdge("B", "A")
	_ = g.AddEdge("E", "C")
	_ = g.AddVertex("F")

	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "D"}, {"C", "E"}, {"F"}}, comps)

	comps, err = dfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Nil(t, comps)

	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
