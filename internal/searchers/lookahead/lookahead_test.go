package lookahead_test

import (
	"github.com/neverfolds/connect383/internal/ai/linear"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/neverfolds/connect383/internal/searchers/lookahead"
	"github.com/neverfolds/connect383/internal/searchers/minimax"
	. "github.com/neverfolds/connect383/internal/searchers/searcherstest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand/v2"
	"testing"
)

func newLookahead(t *testing.T, depth int, pruning bool) *lookahead.Strategy {
	s, err := lookahead.New(Evaluator{}, depth)
	require.NoError(t, err)
	return s.WithPruning(pruning)
}

func TestConfiguration(t *testing.T) {
	_, err := lookahead.New(Evaluator{}, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, searchers.ErrConfiguration), "got error %+v", err)

	_, err = lookahead.New(nil, 2)
	assert.True(t, errors.Is(err, searchers.ErrConfiguration), "got error %+v", err)

	s := newLookahead(t, 2, true)
	assert.Equal(t, 2, s.DepthLimit())
	assert.Equal(t, "lookahead(depth=2, searcherstest, pruning)", s.String())
	assert.Equal(t, "lookahead(depth=2, searcherstest)", s.WithPruning(false).String())
}

func TestDepthZero(t *testing.T) {
	root := Max(Leaf(1), Leaf(2)).WithEstimate(-7)
	for _, pruning := range []bool{true, false} {
		stats := searchers.NewStats()
		v, err := newLookahead(t, 0, pruning).WithStats(stats).Evaluate(root)
		require.NoError(t, err)
		assert.Equal(t, searchers.Value(-7), v)
		assert.Equal(t, int64(1), stats.Evals())
		assert.Equal(t, int64(0), stats.Nodes())

		// Terminal roots get their utility.
		v, err = newLookahead(t, 0, pruning).Evaluate(Leaf(4).WithEstimate(0))
		require.NoError(t, err)
		assert.Equal(t, searchers.Value(4), v)
	}
}

func TestMixedLeaves(t *testing.T) {
	// At depth 2, the 1st branch ends in an exact terminal while the 2nd is estimated.
	root := Max(
		Min(Leaf(3), Leaf(12)),
		Min(Max(Leaf(100)).WithEstimate(6), Max(Leaf(100)).WithEstimate(8)))
	for _, pruning := range []bool{true, false} {
		v, err := newLookahead(t, 2, pruning).Evaluate(root)
		require.NoError(t, err)
		assert.Equal(t, searchers.Value(6), v)

		v, err = newLookahead(t, 3, pruning).Evaluate(root)
		require.NoError(t, err)
		assert.Equal(t, searchers.Value(100), v)
	}
}

func TestEquivalences(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 83))
	for ii := range 200 {
		first := searchers.Maximizer
		if ii%2 == 1 {
			first = searchers.Minimizer
		}
		root := Random(rng, first, 1+rng.IntN(6), 3, 0.2)

		// Searching at least as deep as the tree is exact.
		exact, err := minimax.New().Evaluate(root)
		require.NoError(t, err)
		for _, pruning := range []bool{true, false} {
			v, err := newLookahead(t, root.Height()+rng.IntN(2), pruning).Evaluate(root)
			require.NoError(t, err)
			require.Equalf(t, exact, v, "tree #%d, pruning=%v", ii, pruning)
		}

		// Pruning doesn't change the value at any depth.
		depth := rng.IntN(root.Height() + 1)
		pruningStats, plainStats := searchers.NewStats(), searchers.NewStats()
		withPruning, err := newLookahead(t, depth, true).WithStats(pruningStats).Evaluate(root)
		require.NoError(t, err)
		withoutPruning, err := newLookahead(t, depth, false).WithStats(plainStats).Evaluate(root)
		require.NoError(t, err)
		require.Equalf(t, withoutPruning, withPruning, "tree #%d, depth=%d", ii, depth)
		require.LessOrEqual(t, pruningStats.Nodes(), plainStats.Nodes())
	}
}

func TestEvaluatorErrors(t *testing.T) {
	// The linear evaluator only handles Connect-383 boards.
	root := Max(Min(Leaf(1), Leaf(2)), Min(Leaf(3), Leaf(4)))
	for _, pruning := range []bool{true, false} {
		s, err := lookahead.New(linear.Default, 1)
		require.NoError(t, err)
		_, err = s.WithPruning(pruning).Evaluate(root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "evaluator default failed")
	}
}

func TestInvalidStates(t *testing.T) {
	for _, pruning := range []bool{true, false} {
		broken := &Node{Player: searchers.Maximizer, Broken: true}
		_, err := newLookahead(t, 3, pruning).Evaluate(Min(Leaf(0), Max(broken)))
		assert.True(t, errors.Is(err, searchers.ErrInvalidState), "pruning=%v: got error %+v", pruning, err)

		// A terminal state with successors is reported even where the depth limit is reached.
		for _, depth := range []int{0, 1, 3} {
			stats := searchers.NewStats()
			falseTerminal := &Node{Player: searchers.Minimizer, FalseTerminal: true, Children: []*Node{Leaf(2)}}
			root := Max(falseTerminal)
			if depth == 0 {
				root = falseTerminal
			}
			_, err = newLookahead(t, depth, pruning).WithStats(stats).Evaluate(root)
			assert.True(t, errors.Is(err, searchers.ErrInvalidState),
				"pruning=%v, depth=%d: got error %+v", pruning, depth, err)
			assert.Equal(t, int64(0), stats.Terminals())
		}
	}
}

func TestMaxPlies(t *testing.T) {
	deep := Leaf(1)
	for range 10 {
		deep = Min(deep)
	}
	for _, pruning := range []bool{true, false} {
		_, err := newLookahead(t, 20, pruning).WithMaxPlies(5).Evaluate(deep)
		assert.True(t, errors.Is(err, searchers.ErrRecursionLimit), "got error %+v", err)

		// Depth cutoff comes before the recursion limit.
		v, err := newLookahead(t, 5, pruning).WithMaxPlies(5).Evaluate(deep)
		require.NoError(t, err)
		assert.Equal(t, searchers.Value(0), v)
	}
}
