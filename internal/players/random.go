package players

import (
	"fmt"
	"github.com/neverfolds/connect383/internal/searchers"
	"golang.org/x/exp/rand"
)

// DefaultSeed of the RandomPlayer.
const DefaultSeed = 1

// RandomPlayer picks a random legal move. You should be able to beat it.
//
// The random generator is re-seeded with the same seed at every move: the same state always yields
// the same move, which makes matches against it reproducible.
type RandomPlayer struct {
	seed uint64
}

// Assert that RandomPlayer is a Player.
var _ Player = (*RandomPlayer)(nil)

// NewRandomPlayer returns a RandomPlayer with the given seed.
func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{seed: seed}
}

// Play implements the Player interface.
func (p *RandomPlayer) Play(state searchers.GameState) (
	move searchers.Move, next searchers.GameState, value searchers.Value, err error) {
	if state.IsTerminal() {
		err = searchers.ErrorfInvalidState("random player can't move from a terminal state")
		return
	}
	successors := state.Successors()
	if len(successors) == 0 {
		err = searchers.ErrorfInvalidState("non-terminal state has no successors")
		return
	}
	rng := rand.New(rand.NewSource(p.seed))
	chosen := successors[rng.Intn(len(successors))]
	return chosen.Move, chosen.State, 0, nil
}

// String implements Player.
func (p *RandomPlayer) String() string {
	return fmt.Sprintf("random(seed=%d)", p.seed)
}
