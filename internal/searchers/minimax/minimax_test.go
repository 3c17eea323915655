package minimax_test

import (
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/neverfolds/connect383/internal/searchers/minimax"
	. "github.com/neverfolds/connect383/internal/searchers/searcherstest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestHandBuiltTrees(t *testing.T) {
	testCases := []struct {
		name string
		root *Node
		want searchers.Value
	}{
		{"leaf", Leaf(7), 7},
		{"max", Max(Leaf(3), Leaf(-1), Leaf(5)), 5},
		{"min", Min(Leaf(3), Leaf(-1), Leaf(5)), -1},
		{"classic", Max(
			Min(Leaf(3), Leaf(12), Leaf(8)),
			Min(Leaf(2), Leaf(4), Leaf(6)),
			Min(Leaf(14), Leaf(5), Leaf(2))), 3},
		// Players don't need to alternate.
		{"double-move", Max(Max(Leaf(1), Leaf(4)), Min(Leaf(9), Max(Leaf(-5), Leaf(2)))), 4},
		{"uneven", Min(Leaf(6), Max(Min(Leaf(8), Leaf(10)), Leaf(-20))), 6},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := minimax.New().Evaluate(tc.root)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestIgnoresUtilityOfNonTerminals(t *testing.T) {
	root := Max(Leaf(1), Leaf(2))
	root.Value = 100
	v, err := minimax.New().Evaluate(root)
	require.NoError(t, err)
	assert.Equal(t, searchers.Value(2), v)
}

func TestStats(t *testing.T) {
	stats := searchers.NewStats()
	root := Max(
		Min(Leaf(3), Leaf(12), Leaf(8)),
		Min(Leaf(2), Leaf(4), Leaf(6)),
		Min(Leaf(14), Leaf(5), Leaf(2)))
	_, err := minimax.New().WithStats(stats).Evaluate(root)
	require.NoError(t, err)
	assert.Equal(t, int64(root.Size()-1), stats.Nodes())
	assert.Equal(t, int64(9), stats.Terminals())
	assert.Equal(t, int64(0), stats.Evals())
	assert.Equal(t, int64(0), stats.Prunes())
}

func TestBrokenState(t *testing.T) {
	broken := &Node{Player: searchers.Minimizer, Broken: true}
	_, err := minimax.New().Evaluate(Max(Leaf(1), broken))
	require.Error(t, err)
	assert.True(t, errors.Is(err, searchers.ErrInvalidState), "got error %+v", err)

	// Terminal state with successors.
	stats := searchers.NewStats()
	falseTerminal := &Node{Player: searchers.Minimizer, FalseTerminal: true, Children: []*Node{Leaf(2)}}
	_, err = minimax.New().WithStats(stats).Evaluate(Max(Leaf(1), falseTerminal))
	require.Error(t, err)
	assert.True(t, errors.Is(err, searchers.ErrInvalidState), "got error %+v", err)
	assert.Equal(t, int64(1), stats.Terminals())
}

// chain returns a tree with a single path of the given height.
func chain(height int) *Node {
	node := Leaf(searchers.Value(height))
	for ii := range height {
		if ii%2 == 0 {
			node = Min(node)
		} else {
			node = Max(node)
		}
	}
	return node
}

func TestMaxPlies(t *testing.T) {
	root := chain(10)
	require.Equal(t, 10, root.Height())

	v, err := minimax.New().WithMaxPlies(10).Evaluate(root)
	require.NoError(t, err)
	assert.Equal(t, searchers.Value(10), v)

	_, err = minimax.New().WithMaxPlies(9).Evaluate(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, searchers.ErrRecursionLimit), "got error %+v", err)

	// Disabled guard.
	_, err = minimax.New().WithMaxPlies(0).Evaluate(chain(600))
	require.NoError(t, err)
	_, err = minimax.New().Evaluate(chain(600))
	assert.True(t, errors.Is(err, searchers.ErrRecursionLimit), "got error %+v", err)
}
