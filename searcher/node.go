package searcher

import (
	"math"
	"sync"

	"checkers/game"
)

// node is a position in the MCTS tree. Rewards are credited to mover, the
// side that played move into this position, so a parent ranks its children
// from its own point of view.
type node struct {
	sync.RWMutex
	parent   *node
	move     game.Move
	mover    game.Color
	moves    []game.Move // expanded in order
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, move game.Move, mover game.Color, state game.State) *node {
	var moves []game.Move
	if !state.GameOver() {
		moves = state.LegalMoves()
	}
	return &node{
		parent:   parent,
		move:     move,
		mover:    mover,
		moves:    moves,
		children: make([]*node, 0, len(moves)),
	}
}

// selectOrExpand descends one level. It returns the node itself for terminal
// positions, a new child while moves are left to expand and the best child by
// UCT otherwise.
func (n *node) selectOrExpand(state game.State) (*node, game.State, bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.moves) == 0 { // Terminal node
		return n, state, false
	}

	if len(n.moves) > len(n.children) { // Expandable node
		move := n.moves[len(n.children)]
		next := state.Play(move)
		child := newNode(n, move, state.Player(), next)
		n.children = append(n.children, child)
		child.applyLoss()
		return child, next, true
	}

	// Fully expanded node
	child := n.pickChild()
	child.applyLoss()
	return child, state.Play(child.move), false
}

func (n *node) pickChild() *node {
	// In-flight episodes may not have backed up yet
	policy := newUCT(max(n.visits, 1))

	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		score := child.score(policy)
		if best == nil || score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// applyLoss adds a virtual loss so concurrent episodes spread over the tree.
func (n *node) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

func (n *node) score(policy uct) float64 {
	n.RLock()
	defer n.RUnlock()

	return policy.value(n.rewards, n.visits)
}

// backup records the outcome of an episode and returns the parent.
func (n *node) backup(o outcome) *node {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root node
		n.rewards -= Loss
		n.visits--
		n.rewards += o.rewardFor(n.mover)
	}
	n.visits++

	return n.parent
}

// bestChild returns the most visited child. Ties keep the first expanded.
func (n *node) bestChild() (*node, bool) {
	n.RLock()
	defer n.RUnlock()

	var best *node
	for _, child := range n.children {
		if best == nil || child.visits > best.visits {
			best = child
		}
	}
	return best, best != nil
}

// meanReward is the average reward of n from its mover's point of view.
func (n *node) meanReward() float64 {
	n.RLock()
	defer n.RUnlock()

	if n.visits == 0 {
		return 0
	}
	return n.rewards / float64(n.visits)
}

// outcome is the value of a finished episode for player.
type outcome struct {
	player game.Color
	value  float64
}

func (o outcome) rewardFor(c game.Color) float64 {
	if c == o.player {
		return o.value
	}
	return -o.value
}
