package players

import (
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/neverfolds/connect383/internal/ui/cli"
)

// HumanPlayer prompts the user for a valid move. Very slow and not always smart.
type HumanPlayer struct {
	ui *cli.UI
}

// Assert that HumanPlayer is a Player.
var _ Player = (*HumanPlayer)(nil)

// NewHumanPlayer returns a player that reads moves with ui.
func NewHumanPlayer(ui *cli.UI) *HumanPlayer {
	return &HumanPlayer{ui: ui}
}

// Play implements the Player interface.
func (p *HumanPlayer) Play(state searchers.GameState) (
	move searchers.Move, next searchers.GameState, value searchers.Value, err error) {
	if state.IsTerminal() {
		err = searchers.ErrorfInvalidState("human player can't move from a terminal state")
		return
	}
	successor, err := p.ui.ReadMove(state)
	if err != nil {
		return
	}
	return successor.Move, successor.State, 0, nil
}

// String implements Player.
func (p *HumanPlayer) String() string {
	return "human"
}
