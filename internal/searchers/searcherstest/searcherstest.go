// Package searcherstest provides explicit game trees implementing searchers.GameState, to test
// the searchers independently of any real game.
package searcherstest

import (
	"fmt"
	"github.com/neverfolds/connect383/internal/searchers"
	"github.com/pkg/errors"
	"math/rand/v2"
)

// Node of an explicit game tree. Nodes without Children are terminal, unless Broken is set. Nodes with
// FalseTerminal set are always terminal.
type Node struct {
	// Player to move at this node.
	Player searchers.Player

	// Value is the exact utility of terminal nodes. For non-terminal nodes it is only returned by Utility(),
	// which the searchers should not call.
	Value searchers.Value

	// Estimate is returned by the Evaluator for this node.
	Estimate searchers.Value

	// Children in generation order. The move of each child is its index.
	Children []*Node

	// Broken marks a non-terminal node without successors: a GameState contract violation.
	Broken bool

	// FalseTerminal makes a node with Children report itself as terminal, the reverse violation.
	FalseTerminal bool

	// Name is used for debugging only.
	Name string
}

// Assert Node is a searchers.GameState.
var _ searchers.GameState = (*Node)(nil)

// Leaf returns a terminal node with the given utility.
func Leaf(value searchers.Value) *Node {
	return &Node{Player: searchers.Maximizer, Value: value, Estimate: value}
}

// Max returns a node where the Maximizer is to move.
func Max(children ...*Node) *Node {
	return &Node{Player: searchers.Maximizer, Children: children}
}

// Min returns a node where the Minimizer is to move.
func Min(children ...*Node) *Node {
	return &Node{Player: searchers.Minimizer, Children: children}
}

// WithEstimate sets the value returned by the Evaluator for n, and returns n.
func (n *Node) WithEstimate(estimate searchers.Value) *Node {
	n.Estimate = estimate
	return n
}

// NextPlayer implements searchers.GameState.
func (n *Node) NextPlayer() searchers.Player { return n.Player }

// IsTerminal implements searchers.GameState.
func (n *Node) IsTerminal() bool {
	return n.FalseTerminal || (len(n.Children) == 0 && !n.Broken)
}

// Utility implements searchers.GameState.
func (n *Node) Utility() searchers.Value { return n.Value }

// Successors implements searchers.GameState.
func (n *Node) Successors() []searchers.Successor {
	successors := make([]searchers.Successor, len(n.Children))
	for ii, child := range n.Children {
		successors[ii] = searchers.Successor{Move: searchers.Move(ii), State: child}
	}
	return successors
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n.Name != "" {
		return n.Name
	}
	if n.IsTerminal() {
		return fmt.Sprintf("leaf(%g)", n.Value)
	}
	return fmt.Sprintf("node(%s, %d children)", n.Player, len(n.Children))
}

// Size returns the number of nodes in the tree rooted in n, including n.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.Children {
		size += child.Size()
	}
	return size
}

// Height returns the number of plies of the longest path from n to a leaf.
func (n *Node) Height() int {
	height := 0
	for _, child := range n.Children {
		height = max(height, child.Height()+1)
	}
	return height
}

// Random builds a random tree with alternating players, starting with first, up to the given depth.
// Each non-terminal node has 1 to maxBranching children, and leaves above the max depth are
// generated with probability pLeaf. Utilities and estimates are small integers, so ties are common.
func Random(rng *rand.Rand, first searchers.Player, depth, maxBranching int, pLeaf float64) *Node {
	if depth == 0 || (pLeaf > 0 && rng.Float64() < pLeaf) {
		leaf := Leaf(searchers.Value(rng.IntN(21) - 10))
		leaf.Player = first
		return leaf
	}
	numChildren := 1 + rng.IntN(maxBranching)
	node := &Node{
		Player:   first,
		Value:    searchers.Value(rng.IntN(21) - 10),
		Estimate: searchers.Value(rng.IntN(21) - 10),
		Children: make([]*Node, numChildren),
	}
	for ii := range node.Children {
		node.Children[ii] = Random(rng, first.Opponent(), depth-1, maxBranching, pLeaf)
	}
	return node
}

// Evaluator returns Node.Estimate for every node. It implements ai.Evaluator.
type Evaluator struct{}

// Estimate returns the node's Estimate field.
func (Evaluator) Estimate(state searchers.GameState) (searchers.Value, error) {
	node, ok := state.(*Node)
	if !ok {
		return 0, errors.Errorf("searcherstest.Evaluator can't estimate state of type %T", state)
	}
	return node.Estimate, nil
}

// String implements fmt.Stringer.
func (Evaluator) String() string { return "searcherstest" }
