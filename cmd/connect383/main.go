// connect383 plays one match of Connect-383 between two players, given by their configuration
// strings (see package players), e.g.:
//
//	$ connect383 -p1=human -p2=look3
//	$ connect383 -p1=prune -p2=alt2 -board=4x3
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/must"
	"github.com/neverfolds/connect383/internal/players"
	_ "github.com/neverfolds/connect383/internal/players/default"
	"github.com/neverfolds/connect383/internal/profilers"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/neverfolds/connect383/internal/state"
	"github.com/neverfolds/connect383/internal/ui/cli"
	"github.com/neverfolds/connect383/internal/ui/spinning"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"os"
	"time"
)

var (
	flagPlayer1 = flag.String("p1", "human", "First player (X, the maximizer) configuration, "+
		"e.g. human, random, mini, prune, look3, alt2.")
	flagPlayer2 = flag.String("p2", players.DefaultPlayerConfig, "Second player (O, the minimizer) configuration.")
	flagBoard   = flag.String("board", "", "Board dimensions (e.g. \"5x4\") or layout (e.g. \"..../X..O\"). "+
		"Default is an empty 5x4 board.")
	flagQuiet = flag.Bool("quiet", false, "Quiet mode: only the moves and the final board are printed.")
	flagColor = flag.Bool("color", true, "Use colors in the terminal.")

	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	board := must.M1(state.FromConfig(*flagBoard))
	matchPlayers := [2]players.Player{must.M1(players.New(*flagPlayer1)), must.M1(players.New(*flagPlayer2))}
	ui := cli.New(*flagColor)
	if err := runMatch(globalCtx, ui, board, matchPlayers); err != nil {
		klog.Exitf("Failed to run match: %+v", err)
	}
}

// playerIdx returns the index in the players array of the player to move.
func playerIdx(board *state.Board) int {
	if board.NextPlayer() == searchers.Maximizer {
		return 0
	}
	return 1
}

func runMatch(ctx context.Context, ui *cli.UI, board *state.Board, matchPlayers [2]players.Player) error {
	names := [2]string{matchPlayers[0].String(), matchPlayers[1].String()}
	for !board.IsTerminal() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		player := matchPlayers[playerIdx(board)]
		_, isHuman := player.(*players.HumanPlayer)
		if isHuman || !*flagQuiet {
			fmt.Println()
			ui.PrintBoard(board)
		}

		var s *spinning.Spinning
		if !isHuman {
			s = spinning.New(ctx, os.Stdout, fmt.Sprintf("%s (%s) thinking", state.CellFor(board.NextPlayer()), player))
		}
		var (
			move  searchers.Move
			next  searchers.GameState
			value searchers.Value
			err   error
		)
		profilers.Play(ctx, player.String(), func() { move, next, value, err = player.Play(board) })
		if s != nil {
			elapsed := s.Done()
			if err == nil {
				fmt.Printf("%s (%s) plays column %d (value=%g, %s)\n",
					state.CellFor(board.NextPlayer()), player, move, value, elapsed.Round(time.Millisecond))
			}
		}
		if err != nil {
			return errors.WithMessagef(err, "player %s failed at move #%d", player, board.MoveNumber)
		}
		nextBoard, ok := next.(*state.Board)
		if !ok {
			return errors.Errorf("player %s returned a state of type %T", player, next)
		}
		board = nextBoard
	}

	fmt.Println()
	ui.PrintBoard(board)
	ui.PrintWinner(board, names)
	return nil
}
