package tabu_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fwdindex/core"
	"github.com/katalvlaran/fwdindex/tabu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepOrder is a RandSource that leaves neighbours in adjacency order.
type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

// reverseOrder is a RandSource that reverses the neighbour slice.
type reverseOrder struct{}

func (reverseOrder) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

// countingRand wraps a *rand.Rand and counts Shuffle calls.
type countingRand struct {
	r     *rand.Rand
	calls int
}

func (c *countingRand) Shuffle(n int, swap func(i, j int)) {
	c.calls++
	c.r.Shuffle(n, swap)
}

func line(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < len(ids); i++ {
		require.NoError(t, g.AddEdge(ids[i], ids[i+1]))
	}
	return g
}

// assertSimplePath checks that p is a simple path of g from start to goal.
func assertSimplePath(t *testing.T, g *core.Graph, p []string, start, goal string) {
	t.Helper()
	require.NotEmpty(t, p)
	assert.Equal(t, start, p[0])
	assert.Equal(t, goal, p[len(p)-1])
	seen := make(map[string]bool, len(p))
	for i, v := range p {
		assert.False(t, seen[v], "node %s repeated in %v", v, p)
		seen[v] = true
		if i > 0 {
			assert.True(t, g.HasEdge(p[i-1], v), "%s-%s is not an edge", p[i-1], v)
		}
	}
}

func TestSearch_Errors(t *testing.T) {
	_, err := tabu.Search(nil, "A", "B")
	assert.ErrorIs(t, err, tabu.ErrGraphNil)

	g := line(t, "A", "B")
	_, err = tabu.Search(g, "A", "B", tabu.WithMaxIterations(-1))
	assert.ErrorIs(t, err, tabu.ErrOptionViolation)
	_, err = tabu.Search(g, "A", "B", tabu.WithTabuSize(-3))
	assert.ErrorIs(t, err, tabu.ErrOptionViolation)
}

func TestSearch_LineGraph(t *testing.T) {
	g := line(t, "A", "B", "C")

	res, err := tabu.Search(g, "A", "C", tabu.WithMaxIterations(10), tabu.WithTabuSize(5))
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 2, res.Cost)
	assert.Equal(t, 2, res.Iterations)

	res, err = tabu.Search(g, "C", "A", tabu.WithMaxIterations(10), tabu.WithTabuSize(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Path)
	assert.Equal(t, 2, res.Cost)
}

func TestSearch_ZeroIterations(t *testing.T) {
	g := line(t, "A", "B")
	res, err := tabu.Search(g, "A", "B", tabu.WithMaxIterations(0))
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Equal(t, tabu.Infinity, res.Cost)
	assert.Equal(t, 0, res.Iterations)
}

func TestSearch_Disconnected(t *testing.T) {
	g := line(t, "A", "B")
	require.NoError(t, g.AddVertex("D"))

	for _, pair := range [][2]string{{"A", "D"}, {"D", "A"}} {
		res, err := tabu.Search(g, pair[0], pair[1], tabu.WithSeed(1))
		require.NoError(t, err)
		assert.False(t, res.Found(), "%v", pair)
		assert.Equal(t, []string{pair[0]}, res.Path)
		assert.Equal(t, tabu.Infinity, res.Cost)
	}
}

func TestSearch_UnknownStart(t *testing.T) {
	g := line(t, "A", "B")
	res, err := tabu.Search(g, "ghost", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost"}, res.Path)
	assert.False(t, res.Found())
	assert.Equal(t, 1, res.Iterations, "stuck on the first step")
}

func TestSearch_BudgetExhausted(t *testing.T) {
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = fmt.Sprintf("n%d", i)
	}
	g := line(t, ids...)

	res, err := tabu.Search(g, "n0", "n9", tabu.WithMaxIterations(3))
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, []string{"n0"}, res.Path)
	assert.Equal(t, 3, res.Iterations)

	res, err = tabu.Search(g, "n0", "n9", tabu.WithMaxIterations(9))
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, 9, res.Cost)
}

// TestSearch_GoalOverride checks that an eligible goal beats every other
// candidate regardless of where the shuffle puts it.
func TestSearch_GoalOverride(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("S", "X"))
	require.NoError(t, g.AddEdge("S", "G"))
	require.NoError(t, g.AddEdge("X", "G"))

	for name, src := range map[string]tabu.RandSource{"goal-last": keepOrder{}, "goal-first": reverseOrder{}} {
		t.Run(name, func(t *testing.T) {
			res, err := tabu.Search(g, "S", "G", tabu.WithRand(src))
			require.NoError(t, err)
			assert.Equal(t, []string{"S", "G"}, res.Path)
			assert.Equal(t, 1, res.Cost)
		})
	}
}

// TestSearch_FirstEligibleWins checks the tie-break when the goal is not adjacent.
func TestSearch_FirstEligibleWins(t *testing.T) {
	// S─X─G and S─Y─Z─G ; S's adjacency is [X, Y].
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("S", "X"))
	require.NoError(t, g.AddEdge("S", "Y"))
	require.NoError(t, g.AddEdge("X", "G"))
	require.NoError(t, g.AddEdge("Y", "Z"))
	require.NoError(t, g.AddEdge("Z", "G"))

	res, err := tabu.Search(g, "S", "G", tabu.WithRand(keepOrder{}))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "X", "G"}, res.Path)

	res, err = tabu.Search(g, "S", "G", tabu.WithRand(reverseOrder{}))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Y", "Z", "G"}, res.Path)
	assert.Equal(t, 3, res.Cost, "heuristic does not promise shortest paths")
}

// TestSearch_DeadEnd shows a greedy walk that strands itself: from S it enters
// the dead-end branch D and cannot back out, so the search fails even though
// G is reachable.
func TestSearch_DeadEnd(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("S", "D"))
	require.NoError(t, g.AddEdge("S", "M"))
	require.NoError(t, g.AddEdge("M", "G"))

	res, err := tabu.Search(g, "S", "G", tabu.WithRand(keepOrder{}))
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, []string{"S"}, res.Path)
	assert.Equal(t, 2, res.Iterations)
}

func TestSearch_ParallelEdgesTolerated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	res, err := tabu.Search(g, "A", "C", tabu.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestSearch_ZeroTabuSize(t *testing.T) {
	g := line(t, "A", "B", "C", "D")
	res, err := tabu.Search(g, "A", "D", tabu.WithTabuSize(0), tabu.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
}

// TestSearch_DoesNotMutateGraph guards against shuffling the stored adjacency.
func TestSearch_DoesNotMutateGraph(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, g.AddEdge("hub", v))
	}
	before := g.Neighbors("hub")
	for seed := int64(0); seed < 20; seed++ {
		_, err := tabu.Search(g, "hub", "5", tabu.WithSeed(seed))
		require.NoError(t, err)
	}
	assert.Equal(t, before, g.Neighbors("hub"))
}

// TestSearch_PathsAreSimple runs many seeds over a wheel and a grid and checks
// every successful result is a simple path along true edges.
func TestSearch_PathsAreSimple(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 8; i++ {
		v := fmt.Sprintf("r%d", i)
		require.NoError(t, g.AddEdge("hub", v))
		require.NoError(t, g.AddEdge(v, fmt.Sprintf("r%d", (i+1)%8)))
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			u := fmt.Sprintf("g%d_%d", i, j)
			if j+1 < 3 {
				require.NoError(t, g.AddEdge(u, fmt.Sprintf("g%d_%d", i, j+1)))
			}
			if i+1 < 3 {
				require.NoError(t, g.AddEdge(u, fmt.Sprintf("g%d_%d", i+1, j)))
			}
		}
	}
	require.NoError(t, g.AddEdge("r0", "g0_0"))

	nodes := g.Nodes()
	for seed := int64(1); seed <= 25; seed++ {
		for _, s := range nodes {
			goal := nodes[int(seed)%len(nodes)]
			if goal == s {
				continue
			}
			res, err := tabu.Search(g, s, goal, tabu.WithSeed(seed))
			require.NoError(t, err)
			if res.Found() {
				assertSimplePath(t, g, res.Path, s, goal)
				assert.Equal(t, len(res.Path)-1, res.Cost)
			} else {
				assert.Equal(t, []string{s}, res.Path)
			}
		}
	}
}

func TestSearch_SeedReproducible(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		v := fmt.Sprintf("%d", i)
		require.NoError(t, g.AddEdge("C", v))
		require.NoError(t, g.AddEdge(v, fmt.Sprintf("%d", (i+1)%6)))
	}

	first, err := tabu.Search(g, "0", "3", tabu.WithSeed(77))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := tabu.Search(g, "0", "3", tabu.WithSeed(77))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSearch_ShufflesEveryStep(t *testing.T) {
	g := line(t, "A", "B", "C", "D")
	src := &countingRand{r: tabu.NewRand(5)}
	res, err := tabu.Search(g, "A", "D", tabu.WithRand(src))
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, res.Iterations, src.calls)
}

func TestDeriveSeed_Distinct(t *testing.T) {
	seen := make(map[int64]bool)
	for s := uint64(0); s < 1000; s++ {
		v := tabu.DeriveSeed(42, s)
		assert.False(t, seen[v], "collision at stream %d", s)
		seen[v] = true
	}
	assert.Equal(t, tabu.DeriveSeed(7, 3), tabu.DeriveSeed(7, 3))
	assert.NotEqual(t, tabu.DeriveSeed(7, 3), tabu.DeriveSeed(8, 3))
}
