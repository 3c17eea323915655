// compare plays a number of matches between two player configurations, alternating who plays
// first, and reports the results.
//
// The search players are deterministic: to play different matches, add randomness to at least one
// of them, e.g.:
//
//	$ compare -p1=look3,randomness=0.5 -p2=alt3,randomness=0.5 -num_matches=100
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
	"github.com/neverfolds/connect383/internal/ui/spinning"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"runtime"
	"strings"
	"time"
)

var (
	flagPlayer1Config = flag.String("p1", "", "1st player configuration.")
	flagPlayer2Config = flag.String("p2", "", "2nd player configuration.")
	flagNumMatches    = flag.Int("num_matches", 10, "Number of matches to play.")
	flagParallelism   = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagBoard = flag.String("board", "", "Board dimensions (e.g. \"5x4\") or initial layout. "+
		"Default is an empty 5x4 board.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagPlayer1Config == "" || *flagPlayer2Config == "" {
		klog.Fatal("You must configure both players to compare with flags -p1 and -p2")
	}

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	initialBoard := must.M1(state.FromConfig(*flagBoard))
	aiPlayers := must.M1(createPlayers())
	must.M(runMatches(globalCtx, initialBoard, aiPlayers))
}

func createPlayers() (aiPlayers [2]players.Player, err error) {
	for playerIdx, config := range [2]string{*flagPlayer1Config, *flagPlayer2Config} {
		if strings.HasPrefix(config, "human") {
			return aiPlayers, errors.Errorf("human players can't be compared, got -p%d=%q", playerIdx+1, config)
		}
		klog.V(1).Infof("Creating player #%d from %q", playerIdx+1, config)
		aiPlayers[playerIdx], err = players.New(config)
		if err != nil {
			return
		}
	}
	return
}

func runMatches(ctx context.Context, initialBoard *state.Board, aiPlayers [2]players.Player) error {
	results := NewResults(*flagNumMatches)
	var wg errgroup.Group
	wg.SetLimit(getParallelism())
	fmt.Printf("\r%s\x1b[0K", results)

	for matchIdx := range *flagNumMatches {
		wg.Go(func() error {
			// Players swap sides every other match.
			result, err := runMatch(ctx, matchIdx, initialBoard, aiPlayers, matchIdx%2)
			if err != nil || result.Final == nil {
				return err
			}
			results.Record(result)
			fmt.Printf("\r%s\x1b[0K", results)
			return nil
		})
	}
	err := wg.Wait()
	fmt.Printf("\r%s\x1b[0K\n", results)
	if ctx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return nil
	}
	return err
}

// runMatch plays one match with aiPlayers[xPlayer] playing X. The result has a nil Final board if
// the match was interrupted.
func runMatch(ctx context.Context, matchNum int, board *state.Board, aiPlayers [2]players.Player, xPlayer int) (
	result MatchResult, err error) {
	result.XPlayer = xPlayer
	if klog.V(1).Enabled() {
		klog.Infof("Starting match %d: X=%s, O=%s", matchNum, aiPlayers[xPlayer], aiPlayers[1-xPlayer])
		defer klog.Infof("Finished match %d", matchNum)
	}
	for !board.IsTerminal() {
		if ctx.Err() != nil {
			klog.V(1).Infof("Match %d interrupted: %s", matchNum, ctx.Err())
			return result, nil
		}
		playerIdx := xPlayer
		if board.NextPlayer() == searchers.Minimizer {
			playerIdx = 1 - xPlayer
		}
		player := aiPlayers[playerIdx]
		var next searchers.GameState
		start := time.Now()
		profilers.Play(ctx, player.String(), func() { _, next, _, err = player.Play(board) })
		result.Thinking[playerIdx] += time.Since(start)
		result.Moves[playerIdx]++
		if err != nil {
			return result, errors.WithMessagef(err, "match %d, move #%d", matchNum, board.MoveNumber)
		}
		var ok bool
		if board, ok = next.(*state.Board); !ok {
			return result, errors.Errorf("player %s returned a state of type %T", player, next)
		}
	}
	result.Final = board
	return result, nil
}

// getParallelism returns the number of matches to play concurrently.
func getParallelism() int {
	if *flagParallelism > 0 {
		return *flagParallelism
	}
	return runtime.GOMAXPROCS(0)
}
