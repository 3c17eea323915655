package searchers

import (
	"fmt"
	"sync/atomic"
)

// Stats stores running stats collected during the search: for benchmarking, monitoring, tests and
// debugging purposes.
//
// A nil *Stats is valid and records nothing. Counters are atomic, so one Stats can be shared by
// searches running in parallel.
type Stats struct {
	// nodes is the number of states materialized by calls to GameState.Successors.
	nodes atomic.Int64

	// evals is the number of calls to the evaluator at the depth cutoff.
	evals atomic.Int64

	// terminals is the number of terminal states scored with their exact utility.
	terminals atomic.Int64

	// prunes is the number of cutoffs by alpha-beta pruning.
	prunes atomic.Int64
}

// NewStats returns a zeroed Stats.
func NewStats() *Stats {
	return &Stats{}
}

// AddNodes records n newly created states.
func (s *Stats) AddNodes(n int) {
	if s == nil {
		return
	}
	s.nodes.Add(int64(n))
}

// AddEval records one evaluator call.
func (s *Stats) AddEval() {
	if s == nil {
		return
	}
	s.evals.Add(1)
}

// AddTerminal records one terminal state scored.
func (s *Stats) AddTerminal() {
	if s == nil {
		return
	}
	s.terminals.Add(1)
}

// AddPrune records one alpha-beta cutoff.
func (s *Stats) AddPrune() {
	if s == nil {
		return
	}
	s.prunes.Add(1)
}

// Nodes returns the number of states materialized so far.
func (s *Stats) Nodes() int64 {
	if s == nil {
		return 0
	}
	return s.nodes.Load()
}

// Evals returns the number of evaluator calls so far.
func (s *Stats) Evals() int64 {
	if s == nil {
		return 0
	}
	return s.evals.Load()
}

// Terminals returns the number of terminal states scored so far.
func (s *Stats) Terminals() int64 {
	if s == nil {
		return 0
	}
	return s.terminals.Load()
}

// Prunes returns the number of cutoffs so far.
func (s *Stats) Prunes() int64 {
	if s == nil {
		return 0
	}
	return s.prunes.Load()
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	if s == nil {
		return
	}
	s.nodes.Store(0)
	s.evals.Store(0)
	s.terminals.Store(0)
	s.prunes.Store(0)
}

// String implements fmt.Stringer.
func (s *Stats) String() string {
	return fmt.Sprintf("nodes=%d, terminals=%d, evals=%d, prunes=%d",
		s.Nodes(), s.Terminals(), s.Evals(), s.Prunes())
}
