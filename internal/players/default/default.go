// Package _default registers the default players that can be included in any front-end.
//
// The registered modules are:
//
//   - random: RandomPlayer; parameter seed (int, default 1).
//   - human: HumanPlayer reading from stdin.
//   - mini: exact minimax.
//   - prune: minimax with alpha-beta pruning.
//   - look: depth-limited minimax with the "default" linear evaluator; parameters depth (int, default 3),
//     prune (bool, default true), evaluator (preset name) or weights.
//   - alt: same as look, with the "alt" linear evaluator.
//
// The depth of look and alt is optional: a bare "look" or "alt" searches lookahead.DefaultDepth plies,
// the same as "look3" or "alt3".
//
// The searcher players (all but random and human) also take the parameters of players.NewSearcherPlayer
// (parallelism, stats, randomness and random_seed), and mini and prune take max_plies (int).
package _default

import (
	"github.com/neverfolds/connect383/internal/ai/linear"
	"github.com/neverfolds/connect383/internal/parameters"
	"github.com/neverfolds/connect383/internal/players"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/neverfolds/connect383/internal/searchers/alphabeta"
	"github.com/neverfolds/connect383/internal/searchers/lookahead"
	"github.com/neverfolds/connect383/internal/searchers/minimax"
	"github.com/neverfolds/connect383/internal/ui/cli"
	"github.com/pkg/errors"
)

func init() {
	players.RegisterModule("random", players.ModuleFunc(newRandom))
	players.RegisterModule("human", players.ModuleFunc(newHuman))
	players.RegisterModule("mini", players.ModuleFunc(newMinimax))
	players.RegisterModule("prune", players.ModuleFunc(newAlphaBeta))
	players.RegisterModule("look", lookaheadModule{defaultPreset: linear.Default.String()})
	players.RegisterModule("alt", lookaheadModule{defaultPreset: linear.Alt.String()})
}

func newRandom(params parameters.Params) (players.Player, error) {
	seed, err := parameters.PopParamOr(params, "seed", players.DefaultSeed)
	if err != nil {
		return nil, err
	}
	if seed < 0 {
		return nil, errors.Errorf("random player seed must be >= 0, got %d", seed)
	}
	return players.NewRandomPlayer(uint64(seed)), nil
}

func newHuman(_ parameters.Params) (players.Player, error) {
	return players.NewHumanPlayer(cli.New(true)), nil
}

func newMinimax(params parameters.Params) (players.Player, error) {
	return players.NewSearcherPlayer(params, func(params parameters.Params, stats *searchers.Stats) (searchers.Strategy, error) {
		maxPlies, err := parameters.PopParamOr(params, "max_plies", searchers.DefaultMaxPlies)
		if err != nil {
			return nil, err
		}
		return minimax.New().WithMaxPlies(maxPlies).WithStats(stats), nil
	})
}

func newAlphaBeta(params parameters.Params) (players.Player, error) {
	return players.NewSearcherPlayer(params, func(params parameters.Params, stats *searchers.Stats) (searchers.Strategy, error) {
		maxPlies, err := parameters.PopParamOr(params, "max_plies", searchers.DefaultMaxPlies)
		if err != nil {
			return nil, err
		}
		return alphabeta.New().WithMaxPlies(maxPlies).WithStats(stats), nil
	})
}

// lookaheadModule creates depth-limited players with a linear evaluator.
type lookaheadModule struct {
	defaultPreset string
}

// Assert lookaheadModule implements players.Module.
var _ players.Module = lookaheadModule{}

// NewPlayer implements players.Module.
func (m lookaheadModule) NewPlayer(params parameters.Params) (players.Player, error) {
	return players.NewSearcherPlayer(params, func(params parameters.Params, stats *searchers.Stats) (searchers.Strategy, error) {
		depth, err := parameters.PopParamOr(params, "depth", lookahead.DefaultDepth)
		if err != nil {
			return nil, err
		}
		prune, err := parameters.PopParamOr(params, "prune", true)
		if err != nil {
			return nil, err
		}
		evaluator, err := linear.NewFromParams(params, m.defaultPreset)
		if err != nil {
			return nil, err
		}
		strategy, err := lookahead.New(evaluator, depth)
		if err != nil {
			return nil, err
		}
		return strategy.WithPruning(prune).WithStats(stats), nil
	})
}
