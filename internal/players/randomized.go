package players

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/neverfolds/connect383/internal/generics"
	"github.com/neverfolds/connect383/internal/searchers"
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"
	"math"
	"slices"
	"sync"
)

// RandomizedPlayer adds randomness to the moves chosen by a SearcherPlayer, to explore different
// matches when comparing players.
//
// Each move is sampled with probability softmax(value/randomness), with values taken from the point of
// view of the player to move. Moves that end the game with the best value are never randomized.
type RandomizedPlayer struct {
	searcher   *SearcherPlayer
	randomness float64

	mu  sync.Mutex
	rng *rand.Rand
}

// Assert that RandomizedPlayer is a Player.
var _ Player = (*RandomizedPlayer)(nil)

// NewRandomizedPlayer wraps searcher with the given amount of randomness (>= 0). The larger the value the
// more it leads to exploration, and lower values lead to "pick the best move" (exploitation).
// With randomness 0 it simply returns searcher.
//
// The random generator is seeded once: the sequence of moves is reproducible only if the player is used
// by one match at a time.
func NewRandomizedPlayer(searcher *SearcherPlayer, randomness float64, seed uint64) Player {
	if randomness <= 0 {
		return searcher
	}
	return &RandomizedPlayer{
		searcher:   searcher,
		randomness: randomness,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Play implements the Player interface.
func (p *RandomizedPlayer) Play(state searchers.GameState) (
	move searchers.Move, next searchers.GameState, value searchers.Value, err error) {
	successors, values, err := p.searcher.Selector.Values(state)
	if err != nil {
		return
	}
	player := state.NextPlayer()
	bestIdx := generics.ArgBest(values, func(a, b searchers.Value) bool { return searchers.Better(player, a, b) })
	if len(successors) <= 1 || successors[bestIdx].State.IsTerminal() {
		return successors[bestIdx].Move, successors[bestIdx].State, values[bestIdx], nil
	}

	logits := make([]float64, len(values))
	for ii, v := range values {
		logits[ii] = float64(v) * float64(player) / p.randomness
	}
	probabilities := softmax(logits)

	p.mu.Lock()
	chance := p.rng.Float64()
	p.mu.Unlock()
	for idx, probability := range probabilities {
		if chance > probability {
			chance -= probability
			continue
		}
		if klog.V(2).Enabled() {
			klog.Infof("%s: picked move %d (value=%g, probability=%.3f), best was %d (value=%g)",
				p, successors[idx].Move, values[idx], probability, successors[bestIdx].Move, values[bestIdx])
		}
		return successors[idx].Move, successors[idx].State, values[idx], nil
	}
	// Rounding errors may leave a tiny bit of chance after the last move.
	last := len(successors) - 1
	if chance > 1e-6 {
		exceptions.Panicf("nothing selected!? remaining chance=%g, probabilities=%v", chance, probabilities)
	}
	return successors[last].Move, successors[last].State, values[last], nil
}

// String implements Player.
func (p *RandomizedPlayer) String() string {
	return fmt.Sprintf("%s, randomness=%g", p.searcher, p.randomness)
}

func softmax(values []float64) (probs []float64) {
	probs = make([]float64, len(values))
	var sum float64

	// Subtracting the max value keeps the probabilities the same, with smaller exponentials.
	maxValue := slices.Max(values)
	for ii, value := range values {
		probs[ii] = math.Exp(value - maxValue)
		sum += probs[ii]
	}
	for ii := range probs {
		probs[ii] /= sum
	}
	return
}
