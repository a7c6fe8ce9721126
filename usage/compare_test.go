package usage_test

import (
	"testing"

	"github.com/katalvlaran/fwdindex/core"
	"github.com/katalvlaran/fwdindex/router"
	"github.com/katalvlaran/fwdindex/usage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareShortest_Nil(t *testing.T) {
	_, err := usage.CompareShortest(nil, router.NewTable(nil))
	assert.ErrorIs(t, err, usage.ErrGraphNil)
	_, err = usage.CompareShortest(core.NewGraph(), nil)
	assert.ErrorIs(t, err, usage.ErrTableNil)
}

func TestCompareShortest_Line(t *testing.T) {
	g := abc(t)
	require.NoError(t, g.AddVertex("D"))

	c, err := usage.CompareShortest(g, route(t, g, router.WithSeed(1)))
	require.NoError(t, err)
	assert.Equal(t, 12, c.Pairs)
	assert.Equal(t, 6, c.Found)
	assert.Equal(t, 6, c.Unreachable)
	assert.Empty(t, c.Missed)
	assert.Equal(t, 6, c.Optimal)
	assert.Zero(t, c.TotalStretch)
}

func TestCompareShortest_MissAndStretch(t *testing.T) {
	// S─D (dead end), S─M─G, plus a detour S─X─Y─G.
	g := core.NewGraph()
	for _, e := range [][2]string{{"S", "D"}, {"S", "M"}, {"M", "G"}, {"S", "X"}, {"X", "Y"}, {"Y", "G"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	table := router.NewTable(g.Nodes())
	require.NoError(t, table.Set("S", "G", router.Route{Path: []string{"S", "X", "Y", "G"}, Cost: 3}))
	require.NoError(t, table.Set("S", "M", router.Route{Path: []string{"S", "M"}, Cost: 1}))

	c, err := usage.CompareShortest(g, table)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Found)
	assert.Equal(t, 1, c.Optimal)
	assert.Equal(t, 1, c.TotalStretch)
	assert.Equal(t, 1, c.MaxStretch)
	assert.Contains(t, c.Missed, router.Pair{Start: "G", Goal: "S"})
	assert.Len(t, c.Missed, c.Pairs-2)
}
