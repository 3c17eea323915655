// Package minimax implements the exact, exhaustive minimax searchers.Strategy.
//
// Its cost is exponential on the number of plies left, so it is only usable on small boards or
// near the end of the game.
package minimax

import (
	"github.com/neverfolds/connect383/internal/searchers"
)

// Strategy implements searchers.Strategy with a full-depth minimax search.
type Strategy struct {
	maxPlies int
	stats    *searchers.Stats
}

// Assert Strategy is a searchers.Strategy.
var _ searchers.Strategy = (*Strategy)(nil)

// New returns an exact minimax strategy.
func New() *Strategy {
	return &Strategy{maxPlies: searchers.DefaultMaxPlies}
}

// WithMaxPlies sets the recursion guard: searches deeper than maxPlies fail with
// searchers.ErrRecursionLimit. Set to 0 to disable it. Default is searchers.DefaultMaxPlies.
func (s *Strategy) WithMaxPlies(maxPlies int) *Strategy {
	s.maxPlies = maxPlies
	return s
}

// WithStats sets where to record the search counters. It can be nil.
func (s *Strategy) WithStats(stats *searchers.Stats) *Strategy {
	s.stats = stats
	return s
}

// Stats returns the counters set with WithStats, or nil.
func (s *Strategy) Stats() *searchers.Stats {
	return s.stats
}

// String implements searchers.Strategy.
func (s *Strategy) String() string {
	return "minimax"
}

// Evaluate implements searchers.Strategy: it returns the exact minimax value of state.
func (s *Strategy) Evaluate(state searchers.GameState) (searchers.Value, error) {
	return s.value(state, 0)
}

// value recursively computes the minimax value of state, plies below the root.
// Whether it maximizes or minimizes is decided by each state's next player.
func (s *Strategy) value(state searchers.GameState, plies int) (searchers.Value, error) {
	if state.IsTerminal() {
		return searchers.TerminalUtility(state, s.stats)
	}
	if err := searchers.CheckPlies(plies+1, s.maxPlies); err != nil {
		return 0, err
	}
	successors, err := searchers.ExpandChecked(state, s.stats)
	if err != nil {
		return 0, err
	}

	player := state.NextPlayer()
	v := searchers.WorstValue(player)
	for _, successor := range successors {
		childValue, err := s.value(successor.State, plies+1)
		if err != nil {
			return 0, err
		}
		if searchers.Better(player, childValue, v) {
			v = childValue
		}
	}
	return v, nil
}
