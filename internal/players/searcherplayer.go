package players

import (
	"github.com/neverfolds/connect383/internal/parameters"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// SearcherPlayer is the standard set up for an AI: a searchers.Selector driving a search strategy.
// It implements the Player interface.
type SearcherPlayer struct {
	Selector *searchers.Selector

	// Stats shared with the strategy, if it was configured to record them. It may be nil.
	Stats *searchers.Stats
}

// Assert that SearcherPlayer is a Player.
var _ Player = (*SearcherPlayer)(nil)

// StrategyBuilder builds a strategy that records its counters in stats (which may be nil).
type StrategyBuilder func(params parameters.Params, stats *searchers.Stats) (searchers.Strategy, error)

// NewSearcherPlayer creates a SearcherPlayer from the parameters, using build to create the strategy.
//
// Common parameters:
//
//   - parallelism (int): number of root moves evaluated concurrently. Default is 1.
//   - stats (bool): keep search counters, logged with -v=2. Default is false.
//   - randomness (float): if > 0, moves are sampled by value, see RandomizedPlayer. Default is 0.
//   - random_seed (int): seed used when randomness > 0. Default is DefaultSeed.
func NewSearcherPlayer(params parameters.Params, build StrategyBuilder) (Player, error) {
	parallelism, err := parameters.PopParamOr(params, "parallelism", 1)
	if err != nil {
		return nil, err
	}
	withStats, err := parameters.PopParamOr(params, "stats", false)
	if err != nil {
		return nil, err
	}
	randomness, err := parameters.PopParamOr(params, "randomness", 0.0)
	if err != nil {
		return nil, err
	}
	seed, err := parameters.PopParamOr(params, "random_seed", DefaultSeed)
	if err != nil {
		return nil, err
	}
	if randomness < 0 || seed < 0 {
		return nil, errors.Errorf("randomness and random_seed must be >= 0, got %g and %d", randomness, seed)
	}
	var stats *searchers.Stats
	if withStats {
		stats = searchers.NewStats()
	}
	strategy, err := build(params, stats)
	if err != nil {
		return nil, err
	}
	searcher := &SearcherPlayer{
		Selector: searchers.NewSelector(strategy).WithParallelism(parallelism),
		Stats:    stats,
	}
	return NewRandomizedPlayer(searcher, randomness, uint64(seed)), nil
}

// Play implements the Player interface: it chooses a move for the given state.
func (p *SearcherPlayer) Play(state searchers.GameState) (
	move searchers.Move, next searchers.GameState, value searchers.Value, err error) {
	move, next, value, err = p.Selector.Search(state)
	if err != nil {
		return
	}
	if klog.V(1).Enabled() {
		klog.Infof("AI (%s) playing %d, value=%g", p.Selector, move, value)
	}
	return
}

// String implements Player.
func (p *SearcherPlayer) String() string {
	return p.Selector.String()
}
