// Package ai (Artificial Intelligence) defines the interface that static evaluators of a game
// position have to implement, to be used by depth-limited searches.
package ai

import (
	"github.com/neverfolds/connect383/internal/searchers"
)

// Evaluator estimates the value of a non-terminal state without searching: it is used by
// depth-limited searchers at the cutoff.
//
// Implementations must:
//
//   - Be a pure function of the state given. In particular, they must not look into successors.
//   - Run in time independent of the size of the game tree left: scanning the fixed-size board is fine.
//   - Capture positional signal beyond the exact utility: an estimate of the form Utility()+c
//     makes a depth-limited search no better than a plain utility lookahead.
//
// Estimate returns an error if it doesn't know how to estimate the given state (e.g.: a different
// GameState implementation): it must not silently default to some value.
type Evaluator interface {
	Estimate(state searchers.GameState) (searchers.Value, error)
	String() string
}
