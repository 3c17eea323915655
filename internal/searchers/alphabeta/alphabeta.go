// Package alphabeta implements minimax with alpha-beta pruning as a searchers.Strategy.
//
// It returns exactly the same values as the minimax package, while creating fewer states.
// Successors are always expanded in the order the GameState generates them, so which
// branches are pruned is reproducible.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
package alphabeta

import (
	"github.com/neverfolds/connect383/internal/searchers"
)

// Strategy implements searchers.Strategy.
type Strategy struct {
	maxPlies int
	stats    *searchers.Stats
}

// Assert that Strategy implements searchers.Strategy.
var _ searchers.Strategy = (*Strategy)(nil)

// New returns an alpha-beta pruning strategy.
// There are other optional configurations, see methods Strategy.With...
func New() *Strategy {
	return &Strategy{maxPlies: searchers.DefaultMaxPlies}
}

// WithMaxPlies sets the recursion guard: searches deeper than maxPlies fail with
// searchers.ErrRecursionLimit. Set to 0 to disable it. Default is searchers.DefaultMaxPlies.
func (ab *Strategy) WithMaxPlies(maxPlies int) *Strategy {
	ab.maxPlies = maxPlies
	return ab
}

// WithStats sets where to record the search counters, including the number of prunes. It can be nil.
func (ab *Strategy) WithStats(stats *searchers.Stats) *Strategy {
	ab.stats = stats
	return ab
}

// Stats returns the counters set with WithStats, or nil.
func (ab *Strategy) Stats() *searchers.Stats {
	return ab.stats
}

// String implements searchers.Strategy.
func (ab *Strategy) String() string {
	return "alpha-beta"
}

// Evaluate implements searchers.Strategy: it returns the exact minimax value of state.
func (ab *Strategy) Evaluate(state searchers.GameState) (searchers.Value, error) {
	return Recursion(state, searchers.NegativeInfinity, searchers.PositiveInfinity, Leaves{
		MaxPlies: ab.maxPlies,
		Stats:    ab.stats,
	})
}

// Leaves configures Recursion: how far it goes, and what to do when it stops short of a terminal state.
type Leaves struct {
	// MaxPlies is the recursion guard, 0 disables it.
	MaxPlies int

	// Depth is the number of plies to search before calling Cutoff. It is only used if Cutoff is not nil.
	Depth int

	// Cutoff, if not nil, is called for non-terminal states Depth plies below the root.
	Cutoff func(state searchers.GameState) (searchers.Value, error)

	// Stats where to record counters, it can be nil.
	Stats *searchers.Stats
}

// Recursion of the alpha-beta pruning algorithm, starting with the given bounds:
//
//   - alpha: best value the maximizer can already guarantee on the path from the root.
//   - beta: best value the minimizer can already guarantee on the path from the root.
//
// It is exported so depth-limited searches can reuse it, with leaves.Cutoff set.
func Recursion(state searchers.GameState, alpha, beta searchers.Value, leaves Leaves) (searchers.Value, error) {
	return recursion(state, 0, alpha, beta, &leaves)
}

// recursion works on its own copy of alpha and beta: tightening them never affects the caller.
func recursion(state searchers.GameState, plies int, alpha, beta searchers.Value, leaves *Leaves) (searchers.Value, error) {
	// Terminal states are scored exactly, independent of the bounds.
	if state.IsTerminal() {
		return searchers.TerminalUtility(state, leaves.Stats)
	}
	if leaves.Cutoff != nil && plies >= leaves.Depth {
		leaves.Stats.AddEval()
		return leaves.Cutoff(state)
	}
	if err := searchers.CheckPlies(plies+1, leaves.MaxPlies); err != nil {
		return 0, err
	}
	successors, err := searchers.ExpandChecked(state, leaves.Stats)
	if err != nil {
		return 0, err
	}

	if state.NextPlayer() == searchers.Maximizer {
		v := searchers.NegativeInfinity
		for _, successor := range successors {
			childValue, err := recursion(successor.State, plies+1, alpha, beta, leaves)
			if err != nil {
				return 0, err
			}
			v = max(v, childValue)
			alpha = max(alpha, v)
			if v >= beta {
				// The minimizer above will never let the game reach this state.
				leaves.Stats.AddPrune()
				return v, nil
			}
		}
		return v, nil
	}

	v := searchers.PositiveInfinity
	for _, successor := range successors {
		childValue, err := recursion(successor.State, plies+1, alpha, beta, leaves)
		if err != nil {
			return 0, err
		}
		v = min(v, childValue)
		beta = min(beta, v)
		if v <= alpha {
			// The maximizer above will never let the game reach this state.
			leaves.Stats.AddPrune()
			return v, nil
		}
	}
	return v, nil
}
