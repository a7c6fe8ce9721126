// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/katalvlaran/fwdindex/builder"
	"github.com/katalvlaran/fwdindex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, cons builder.Constructor, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, opts, cons)
	require.NoError(t, err)
	return g
}

// assertSimple checks neighbour symmetry and the absence of loops and
// parallel edges.
func assertSimple(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, u := range g.Nodes() {
		seen := map[string]bool{}
		for _, v := range g.Neighbors(u) {
			assert.NotEqual(t, u, v, "loop at %s", u)
			assert.False(t, seen[v], "parallel edge %s-%s", u, v)
			seen[v] = true
			assert.Contains(t, g.Neighbors(v), u)
		}
	}
}

func TestBuilders_Counts(t *testing.T) {
	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		degree       map[string]int
	}{
		{"Cycle(5)", builder.Cycle(5), 5, 5, map[string]int{"0": 2, "4": 2}},
		{"Path(4)", builder.Path(4), 4, 3, map[string]int{"0": 1, "1": 2, "3": 1}},
		{"Wheel(6)", builder.Wheel(6), 6, 10, map[string]int{"0": 5, "1": 3, "5": 3}},
		{"Star(5)", builder.Star(5), 5, 4, map[string]int{"0": 4, "4": 1}},
		{"Complete(5)", builder.Complete(5), 5, 10, map[string]int{"2": 4}},
		{"Complete(1)", builder.Complete(1), 1, 0, map[string]int{"0": 0}},
		{"Hypercube(3)", builder.Hypercube(3), 8, 12, map[string]int{"000": 3, "111": 3}},
		{"DeBruijn(2,2)", builder.DeBruijn(2, 2), 4, 5, map[string]int{"00": 2, "01": 3, "10": 3, "11": 2}},
		{"DeBruijn(2,3)", builder.DeBruijn(2, 3), 8, 13, nil},
		{"DeBruijn(3,1)", builder.DeBruijn(3, 1), 3, 3, nil},
		{"Grid(3,3,Conn4)", builder.Grid(3, 3, builder.Conn4), 9, 12, map[string]int{"0": 2, "1": 3, "4": 4}},
		{"Grid(3,3,Conn8)", builder.Grid(3, 3, builder.Conn8), 9, 20, map[string]int{"0": 3, "1": 5, "4": 8}},
		{"Grid(1,4,Conn4)", builder.Grid(1, 4, builder.Conn4), 4, 3, map[string]int{"0": 1, "3": 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.ctor)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for id, d := range tc.degree {
				assert.Equal(t, d, g.Degree(id), "degree(%s)", id)
			}
			assertSimple(t, g)
		})
	}
}

// TestWheel_NeighbourOrder pins the emission order: spokes first, then rim.
func TestWheel_NeighbourOrder(t *testing.T) {
	g := build(t, builder.Wheel(5))
	assert.Equal(t, []string{"1", "2", "3", "4"}, g.Neighbors("0"))
	assert.Equal(t, []string{"0", "2", "4"}, g.Neighbors("1"))
	assert.Equal(t, []string{"0", "3", "1"}, g.Neighbors("4"))
}

func TestHypercube_Labels(t *testing.T) {
	g := build(t, builder.Hypercube(2))
	assert.Equal(t, []string{"00", "01", "10", "11"}, g.Nodes())
	assert.Equal(t, []string{"01", "10"}, g.Neighbors("00"))
	assert.True(t, g.HasEdge("11", "10"))
	assert.False(t, g.HasEdge("00", "11"))
}

func TestDeBruijn_Labels(t *testing.T) {
	g := build(t, builder.DeBruijn(2, 2))
	assert.Equal(t, []string{"00", "01", "10", "11"}, g.Nodes())
	assert.Equal(t, []string{"01", "10"}, g.Neighbors("00"))
	assert.False(t, g.HasEdge("00", "11"))
}

func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Hypercube(0)", builder.Hypercube(0), builder.ErrTooFewVertices},
		{"Hypercube(17)", builder.Hypercube(17), builder.ErrTooLarge},
		{"DeBruijn(1,3)", builder.DeBruijn(1, 3), builder.ErrTooFewVertices},
		{"DeBruijn(2,0)", builder.DeBruijn(2, 0), builder.ErrTooFewVertices},
		{"DeBruijn(37,1)", builder.DeBruijn(37, 1), builder.ErrTooLarge},
		{"DeBruijn(10,6)", builder.DeBruijn(10, 6), builder.ErrTooLarge},
		{"Cycle(huge)", builder.Cycle(builder.MaxVertices + 1), builder.ErrTooLarge},
		{"RandomSparse(0)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"Grid(0,3)", builder.Grid(0, 3, builder.Conn4), builder.ErrTooFewVertices},
		{"Grid(1,1)", builder.Grid(1, 1, builder.Conn8), builder.ErrTooFewVertices},
		{"Grid(300,300)", builder.Grid(300, 300, builder.Conn4), builder.ErrTooLarge},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse(t *testing.T) {
	g := build(t, builder.RandomSparse(6, 0))
	assert.Equal(t, 6, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	g = build(t, builder.RandomSparse(6, 1))
	assert.Equal(t, 15, g.EdgeCount())

	a := build(t, builder.RandomSparse(20, 0.3), builder.WithSeed(9))
	b := build(t, builder.RandomSparse(20, 0.3), builder.WithSeed(9))
	assert.Equal(t, a.Edges(), b.Edges())
	assertSimple(t, a)
}

func TestBuildGraph_Compose(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("v"))},
		builder.Path(3), builder.Star(3))
	require.NoError(t, err)
	// Star reuses v0 as hub: v0-v1 appears twice.
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Nodes())
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "1", builder.OneBasedIDFn(0))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "v7", builder.PrefixIDFn("v")(7))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
