// Package searchers defines the contract between the search algorithms and the game they play,
// and implements the Selector that picks the move for the player to act.
//
// The search algorithms themselves live in the sub-packages:
//
//   - minimax: exact, exhaustive minimax.
//   - alphabeta: minimax with alpha-beta pruning, same values as minimax.
//   - lookahead: depth-limited minimax that falls back to an ai.Evaluator at the cutoff.
package searchers

import (
	"fmt"
	"github.com/chewxy/math32"
)

// Player is the side to move: Maximizer (+1) or Minimizer (-1).
type Player int8

const (
	Maximizer Player = 1
	Minimizer Player = -1
)

// String returns "+1" or "-1".
func (p Player) String() string {
	return fmt.Sprintf("%+d", int8(p))
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return -p
}

// Value of a game state: larger favors Maximizer, smaller favors Minimizer.
// Exact utilities and heuristic estimates share the same scale.
type Value = float32

var (
	// PositiveInfinity is the initial running value of a minimizing node.
	PositiveInfinity = math32.Inf(1)

	// NegativeInfinity is the initial running value of a maximizing node.
	NegativeInfinity = math32.Inf(-1)
)

// Move identifies the action that produced a successor. It is only reported back, never
// inspected by the search.
type Move int

// Successor is one (move, resulting state) pair.
type Successor struct {
	Move  Move
	State GameState
}

// GameState is everything the search layer is allowed to know about a position.
//
// Implementations must be immutable once returned by Successors.
type GameState interface {
	// NextPlayer returns the side that moves from this state.
	NextPlayer() Player

	// IsTerminal returns true iff no further moves are possible.
	IsTerminal() bool

	// Utility is the exact game score. It is only meaningful for terminal states.
	Utility() Value

	// Successors returns all legal next states. The order is part of the contract: it must be
	// stable and deterministic, since pruning depends on it.
	Successors() []Successor
}

// Strategy computes, or estimates, the minimax value of a state.
type Strategy interface {
	// Evaluate returns the value of state for the player to act in it.
	Evaluate(state GameState) (Value, error)

	// String returns a short name for logging.
	String() string
}

// Better returns whether v strictly improves on best from the point of view of player.
func Better(player Player, v, best Value) bool {
	if player == Maximizer {
		return v > best
	}
	return v < best
}

// WorstValue returns the initial running best for player: -Inf for Maximizer, +Inf for Minimizer.
func WorstValue(player Player) Value {
	if player == Maximizer {
		return NegativeInfinity
	}
	return PositiveInfinity
}

// ExpandChecked returns state.Successors(), after checking for a non-terminal state without successors,
// which is a broken GameState.
//
// The number of successors is added to stats, if not nil.
func ExpandChecked(state GameState, stats *Stats) ([]Successor, error) {
	successors := state.Successors()
	if len(successors) == 0 {
		return nil, ErrorfInvalidState("non-terminal state (next player %s) has no successors", state.NextPlayer())
	}
	stats.AddNodes(len(successors))
	return successors, nil
}

// TerminalUtility returns state.Utility() of a terminal state, after checking it has no successors,
// which would be a broken GameState. Only valid terminal states are counted in stats.
func TerminalUtility(state GameState, stats *Stats) (Value, error) {
	if successors := state.Successors(); len(successors) > 0 {
		return 0, ErrorfInvalidState("terminal state (next player %s) has %d successors",
			state.NextPlayer(), len(successors))
	}
	stats.AddTerminal()
	return state.Utility(), nil
}
