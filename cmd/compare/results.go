package main

import (
	"fmt"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/neverfolds/connect383/internal/state"
	"strings"
	"sync"
	"time"
)

// MatchResult is the outcome of one match, from the point of view of the compared players:
// index 0 is -p1 and index 1 is -p2, regardless of who played X.
type MatchResult struct {
	// XPlayer is the index of the player that played X (first).
	XPlayer int

	// Final board of the match.
	Final *state.Board

	// Thinking time and number of moves of each player.
	Thinking [2]time.Duration
	Moves    [2]int
}

// Results accumulates MatchResult from concurrent matches.
type Results struct {
	mu    sync.Mutex
	start time.Time
	total int

	played           int
	winsAsX, winsAsO [2]int
	draws            int
	scoreDiff        [2]int
	thinking         [2]time.Duration
	moves            [2]int
}

// NewResults returns empty Results for the given number of matches.
func NewResults(total int) *Results {
	return &Results{start: time.Now(), total: total}
}

// Record adds the result of one match.
func (r *Results) Record(m MatchResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	oPlayer := 1 - m.XPlayer
	utility := int(m.Final.Utility())
	r.scoreDiff[m.XPlayer] += utility
	r.scoreDiff[oPlayer] -= utility
	switch m.Final.Winner() {
	case searchers.Maximizer:
		r.winsAsX[m.XPlayer]++
	case searchers.Minimizer:
		r.winsAsO[oPlayer]++
	default:
		r.draws++
	}
	for playerIdx := range 2 {
		r.thinking[playerIdx] += m.Thinking[playerIdx]
		r.moves[playerIdx] += m.Moves[playerIdx]
	}
	r.played++
}

// Wins returns the total number of wins of the player.
func (r *Results) Wins(playerIdx int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.winsAsX[playerIdx] + r.winsAsO[playerIdx]
}

// String implements fmt.Stringer: a one line summary.
func (r *Results) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	parts := []string{fmt.Sprintf("Played %d of %d", r.played, r.total)}
	for playerIdx := range 2 {
		var perMove time.Duration
		if r.moves[playerIdx] > 0 {
			perMove = r.thinking[playerIdx] / time.Duration(r.moves[playerIdx])
		}
		parts = append(parts, fmt.Sprintf("P%d: %d wins (X: %d, O: %d), score diff %+d, %s/move",
			playerIdx+1, r.winsAsX[playerIdx]+r.winsAsO[playerIdx], r.winsAsX[playerIdx], r.winsAsO[playerIdx],
			r.scoreDiff[playerIdx], perMove.Round(time.Microsecond)))
	}
	parts = append(parts, fmt.Sprintf("%d draws", r.draws), time.Since(r.start).Round(time.Millisecond).String())
	return strings.Join(parts, " / ")
}
