package searchers

import (
	"github.com/neverfolds/connect383/internal/generics"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"time"
)

// Selector drives a Strategy once per turn: it evaluates every successor of the current state and
// picks the best one for the player to act.
type Selector struct {
	strategy    Strategy
	parallelism int
}

// NewSelector returns a Selector that evaluates successors with strategy.
// See Selector.WithParallelism for other options.
func NewSelector(strategy Strategy) *Selector {
	return &Selector{strategy: strategy, parallelism: 1}
}

// WithParallelism sets how many successors of the root are evaluated concurrently.
// Values <= 1 (the default is 1) evaluate them sequentially.
//
// The result doesn't depend on it: values are reduced in enumeration order either way.
// The strategy must be safe for concurrent use, which is the case for the ones in this module.
func (s *Selector) WithParallelism(parallelism int) *Selector {
	s.parallelism = max(parallelism, 1)
	return s
}

// Strategy returns the strategy used by the Selector.
func (s *Selector) Strategy() Strategy {
	return s.strategy
}

// String implements fmt.Stringer.
func (s *Selector) String() string {
	return s.strategy.String()
}

// stats returns the Stats of the strategy, if it keeps any, or nil.
func (s *Selector) stats() *Stats {
	if withStats, ok := s.strategy.(interface{ Stats() *Stats }); ok {
		return withStats.Stats()
	}
	return nil
}

// Search returns the move that is optimal for state.NextPlayer() according to the strategy, the state
// after taking it and its value.
//
// Ties are broken in favor of the first successor in enumeration order.
// It returns ErrInvalidState if state is terminal or has no successors.
func (s *Selector) Search(state GameState) (move Move, next GameState, value Value, err error) {
	start := time.Now()
	successors, values, err := s.Values(state)
	if err != nil {
		return
	}

	nextPlayer := state.NextPlayer()
	bestIdx := generics.ArgBest(values, func(a, b Value) bool { return Better(nextPlayer, a, b) })
	move, next, value = successors[bestIdx].Move, successors[bestIdx].State, values[bestIdx]

	if klog.V(2).Enabled() {
		klog.Infof("%s: player %s moves %d, value=%g, values=%v, elapsed=%s",
			s.strategy, nextPlayer, move, value, values, time.Since(start))
		if stats := s.stats(); stats != nil {
			klog.Infof("  stats: %s", stats)
		}
	}
	return
}

// Values returns the successors of state and the value of each of them according to the strategy,
// in enumeration order.
//
// It returns ErrInvalidState if state is terminal or has no successors. The successors of state are
// counted in the strategy's Stats, if it keeps any.
func (s *Selector) Values(state GameState) (successors []Successor, values []Value, err error) {
	if state.IsTerminal() {
		if _, err = TerminalUtility(state, nil); err != nil {
			return
		}
		err = ErrorfInvalidState("cannot select a move from a terminal state")
		return
	}
	successors, err = ExpandChecked(state, s.stats())
	if err != nil {
		return nil, nil, err
	}
	values, err = s.evaluateAll(successors)
	if err != nil {
		return nil, nil, err
	}
	return
}

// evaluateAll returns the value of each successor, in order.
func (s *Selector) evaluateAll(successors []Successor) ([]Value, error) {
	values := make([]Value, len(successors))
	if s.parallelism <= 1 {
		for ii, successor := range successors {
			v, err := s.strategy.Evaluate(successor.State)
			if err != nil {
				return nil, errors.WithMessagef(err, "%s failed to evaluate move %d", s.strategy, successor.Move)
			}
			values[ii] = v
		}
		return values, nil
	}

	var wg errgroup.Group
	wg.SetLimit(s.parallelism)
	for ii, successor := range successors {
		wg.Go(func() error {
			v, err := s.strategy.Evaluate(successor.State)
			if err != nil {
				return errors.WithMessagef(err, "%s failed to evaluate move %d", s.strategy, successor.Move)
			}
			values[ii] = v
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
