// Package lookahead implements depth-limited minimax as a searchers.Strategy: after a fixed
// number of plies the search stops and an ai.Evaluator estimates the value of the position.
//
// Terminal states are always scored with their exact utility, regardless of the depth left.
package lookahead

import (
	"fmt"
	"github.com/neverfolds/connect383/internal/ai"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/neverfolds/connect383/internal/searchers/alphabeta"
	"github.com/pkg/errors"
)

// DefaultDepth is used by the players when no depth is configured.
const DefaultDepth = 3

// Strategy implements searchers.Strategy.
type Strategy struct {
	evaluator  ai.Evaluator
	depthLimit int
	pruning    bool
	maxPlies   int
	stats      *searchers.Stats
}

// Assert that Strategy implements searchers.Strategy.
var _ searchers.Strategy = (*Strategy)(nil)

// New returns a depth-limited strategy that searches depthLimit plies before using evaluator.
// A depthLimit of 0 means no search at all: the root state is estimated directly.
//
// It returns searchers.ErrConfiguration if depthLimit is negative or evaluator is nil.
func New(evaluator ai.Evaluator, depthLimit int) (*Strategy, error) {
	if depthLimit < 0 {
		return nil, searchers.ErrorfConfiguration("depth limit must be >= 0, got %d", depthLimit)
	}
	if evaluator == nil {
		return nil, searchers.ErrorfConfiguration("depth-limited search requires an evaluator")
	}
	return &Strategy{
		evaluator:  evaluator,
		depthLimit: depthLimit,
		pruning:    true,
		maxPlies:   searchers.DefaultMaxPlies,
	}, nil
}

// WithPruning enables or disables alpha-beta pruning. It is enabled by default. It doesn't change the
// values returned, only the number of states visited.
func (s *Strategy) WithPruning(pruning bool) *Strategy {
	s.pruning = pruning
	return s
}

// WithMaxPlies sets the recursion guard, see alphabeta.Strategy.WithMaxPlies.
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

// DepthLimit returns the number of plies searched before estimating.
func (s *Strategy) DepthLimit() int {
	return s.depthLimit
}

// Evaluator returns the evaluator used at the cutoff.
func (s *Strategy) Evaluator() ai.Evaluator {
	return s.evaluator
}

// String implements searchers.Strategy.
func (s *Strategy) String() string {
	if s.pruning {
		return fmt.Sprintf("lookahead(depth=%d, %s, pruning)", s.depthLimit, s.evaluator)
	}
	return fmt.Sprintf("lookahead(depth=%d, %s)", s.depthLimit, s.evaluator)
}

// Evaluate implements searchers.Strategy: it returns the depth-limited minimax value of state.
func (s *Strategy) Evaluate(state searchers.GameState) (searchers.Value, error) {
	if s.pruning {
		return alphabeta.Recursion(state, searchers.NegativeInfinity, searchers.PositiveInfinity, alphabeta.Leaves{
			MaxPlies: s.maxPlies,
			Depth:    s.depthLimit,
			Cutoff:   s.estimate,
			Stats:    s.stats,
		})
	}
	return s.boundedValue(state, s.depthLimit, 0)
}

// estimate calls the evaluator, adding context to its errors.
func (s *Strategy) estimate(state searchers.GameState) (searchers.Value, error) {
	v, err := s.evaluator.Estimate(state)
	if err != nil {
		return 0, errors.WithMessagef(err, "evaluator %s failed", s.evaluator)
	}
	return v, nil
}

// boundedValue is the plain depth-limited minimax, with depth plies left to search.
func (s *Strategy) boundedValue(state searchers.GameState, depth, plies int) (searchers.Value, error) {
	if state.IsTerminal() {
		return searchers.TerminalUtility(state, s.stats)
	}
	if depth == 0 {
		s.stats.AddEval()
		return s.estimate(state)
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
		childValue, err := s.boundedValue(successor.State, depth-1, plies+1)
		if err != nil {
			return 0, err
		}
		if searchers.Better(player, childValue, v) {
			v = childValue
		}
	}
	return v, nil
}
