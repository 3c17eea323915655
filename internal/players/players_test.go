package players_test

import (
	"github.com/neverfolds/connect383/internal/ai/linear"
	"github.com/neverfolds/connect383/internal/players"
	_ "github.com/neverfolds/connect383/internal/players/default"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/neverfolds/connect383/internal/searchers/alphabeta"
	"github.com/neverfolds/connect383/internal/searchers/lookahead"
	"github.com/neverfolds/connect383/internal/searchers/minimax"
	"github.com/neverfolds/connect383/internal/state"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
	"testing"
)

func init() {
	klog.InitFlags(nil)
}

func TestRegisteredModules(t *testing.T) {
	assert.Equal(t, []string{"alt", "human", "look", "mini", "prune", "random"}, players.RegisteredModules())
}

// lookaheadOf returns the lookahead strategy of a player, failing the test if it is something else.
func lookaheadOf(t *testing.T, p players.Player) *lookahead.Strategy {
	searcher, ok := p.(*players.SearcherPlayer)
	require.Truef(t, ok, "player %s is a %T", p, p)
	strategy, ok := searcher.Selector.Strategy().(*lookahead.Strategy)
	require.Truef(t, ok, "strategy %s is a %T", searcher.Selector.Strategy(), searcher.Selector.Strategy())
	return strategy
}

func TestNewLookahead(t *testing.T) {
	testCases := []struct {
		config, name string
		depth        int
		evaluator    *linear.Evaluator
	}{
		{"", "lookahead(depth=3, default, pruning)", 3, linear.Default},
		{"look3", "lookahead(depth=3, default, pruning)", 3, linear.Default},
		{"look", "lookahead(depth=3, default, pruning)", lookahead.DefaultDepth, linear.Default},
		{"alt2", "lookahead(depth=2, alt, pruning)", 2, linear.Alt},
		{"look:depth=2,prune=false", "lookahead(depth=2, default)", 2, linear.Default},
		{"look1,prune=false", "lookahead(depth=1, default)", 1, linear.Default},
		{"alt5:evaluator=default", "lookahead(depth=5, default, pruning)", 5, linear.Default},
		{"look0", "lookahead(depth=0, default, pruning)", 0, linear.Default},
	}
	for _, tc := range testCases {
		t.Run(tc.config, func(t *testing.T) {
			p, err := players.New(tc.config)
			require.NoError(t, err)
			assert.Equal(t, tc.name, p.String())
			strategy := lookaheadOf(t, p)
			assert.Equal(t, tc.depth, strategy.DepthLimit())
			assert.Same(t, tc.evaluator, strategy.Evaluator())
		})
	}

	p, err := players.New("look2:weights=1;0;0;0;0")
	require.NoError(t, err)
	assert.Equal(t, "custom", lookaheadOf(t, p).Evaluator().String())
}

func TestNewExact(t *testing.T) {
	p, err := players.New("mini")
	require.NoError(t, err)
	_, ok := p.(*players.SearcherPlayer).Selector.Strategy().(*minimax.Strategy)
	assert.True(t, ok)
	assert.Nil(t, p.(*players.SearcherPlayer).Stats)

	p, err = players.New("prune:stats,parallelism=2,max_plies=100")
	require.NoError(t, err)
	searcher := p.(*players.SearcherPlayer)
	strategy, ok := searcher.Selector.Strategy().(*alphabeta.Strategy)
	require.True(t, ok)
	require.NotNil(t, searcher.Stats)
	assert.Same(t, searcher.Stats, strategy.Stats())
}

func TestNewErrors(t *testing.T) {
	for _, config := range []string{
		"unknown",
		"look3:depth=2",
		"look:depth=-1",
		"look:depth=two",
		"look:foo=1",
		"look:evaluator=best",
		"look:weights=1;2",
		"mini3",
		"random:seed=-1",
		"prune:parallelism=x",
	} {
		_, err := players.New(config)
		assert.Errorf(t, err, "player config %q should have failed", config)
	}

	_, err := players.New("look:depth=-1")
	assert.True(t, errors.Is(err, searchers.ErrConfiguration), "got error %+v", err)
}

func TestRandomPlayer(t *testing.T) {
	board, err := state.NewBoard(7, 6)
	require.NoError(t, err)

	p, err := players.New("random:seed=7")
	require.NoError(t, err)
	assert.Equal(t, "random(seed=7)", p.String())
	move, next, _, err := p.Play(board)
	require.NoError(t, err)
	assert.Equal(t, board.Act(int(move)).Layout(), next.(*state.Board).Layout())
	for range 5 {
		again, _, _, err := p.Play(board)
		require.NoError(t, err)
		assert.Equal(t, move, again)
	}

	// Different seeds pick different moves at least sometimes.
	moves := make(map[searchers.Move]bool)
	for seed := range uint64(20) {
		move, _, _, err := players.NewRandomPlayer(seed).Play(board)
		require.NoError(t, err)
		moves[move] = true
	}
	assert.Greater(t, len(moves), 1)

	full, err := state.Parse("XO/OX")
	require.NoError(t, err)
	_, _, _, err = p.Play(full)
	assert.True(t, errors.Is(err, searchers.ErrInvalidState), "got error %+v", err)
}

// TestMatch plays full matches between the AI players, on a small board.
func TestMatch(t *testing.T) {
	for _, configs := range [][2]string{
		{"look2", "random"},
		{"random:seed=3", "alt1"},
		{"prune", "look2,prune=false"},
	} {
		t.Run(configs[0]+"_vs_"+configs[1], func(t *testing.T) {
			p1, err := players.New(configs[0])
			require.NoError(t, err)
			p2, err := players.New(configs[1])
			require.NoError(t, err)
			board, err := state.NewBoard(4, 3)
			require.NoError(t, err)
			matchPlayers := [2]players.Player{p1, p2}
			for turn := 0; !board.IsTerminal(); turn++ {
				move, next, _, err := matchPlayers[turn%2].Play(board)
				require.NoError(t, err)
				require.True(t, board.Playable(int(move)))
				board = next.(*state.Board)
			}
			assert.Equal(t, 12, board.MoveNumber)
		})
	}
}

// TestExactPlayerWinsForcedGame checks the exact players find the only winning move.
func TestExactPlayerWinsForcedGame(t *testing.T) {
	board, err := state.Parse(".../.../XXO/OXO")
	require.NoError(t, err)
	for _, config := range []string{"mini", "prune", "look6", "look5,prune=false"} {
		p, err := players.New(config)
		require.NoError(t, err)
		move, _, value, err := p.Play(board)
		require.NoError(t, err)
		assert.Equalf(t, searchers.Move(1), move, "player %s", p)
		assert.Equalf(t, searchers.Value(9), value, "player %s", p)
	}
}

func TestRandomizedPlayer(t *testing.T) {
	p, err := players.New("look2:randomness=1000,random_seed=5")
	require.NoError(t, err)
	_, ok := p.(*players.RandomizedPlayer)
	require.True(t, ok, "got %T", p)
	assert.Equal(t, "lookahead(depth=2, default, pruning), randomness=1000", p.String())

	// With lots of randomness, all moves get picked eventually.
	board, err := state.NewBoard(4, 3)
	require.NoError(t, err)
	moves := make(map[searchers.Move]bool)
	for range 100 {
		move, next, _, err := p.Play(board)
		require.NoError(t, err)
		require.Equal(t, board.Act(int(move)).Layout(), next.(*state.Board).Layout())
		moves[move] = true
	}
	assert.Len(t, moves, 4)

	// With very little randomness, it plays the best move.
	p, err = players.New("prune:randomness=1e-6")
	require.NoError(t, err)
	forced, err := state.Parse(".../.../XXO/OXO")
	require.NoError(t, err)
	for range 20 {
		move, _, value, err := p.Play(forced)
		require.NoError(t, err)
		assert.Equal(t, searchers.Move(1), move)
		assert.Equal(t, searchers.Value(9), value)
	}

	// The last move of the game is never randomized.
	p, err = players.New("mini:randomness=1000")
	require.NoError(t, err)
	lastMove, err := state.Parse("X.O/XOX/OXO")
	require.NoError(t, err)
	for range 20 {
		move, _, _, err := p.Play(lastMove)
		require.NoError(t, err)
		assert.Equal(t, searchers.Move(1), move)
	}

	for _, config := range []string{"look:randomness=-1", "prune:random_seed=-2", "mini:randomness=lots"} {
		_, err = players.New(config)
		assert.Errorf(t, err, "player config %q should have failed", config)
	}

	// Zero randomness is the plain searcher.
	p, err = players.New("prune:randomness=0")
	require.NoError(t, err)
	_, ok = p.(*players.SearcherPlayer)
	assert.True(t, ok, "got %T", p)
}
