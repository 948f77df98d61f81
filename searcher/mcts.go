package searcher

import (
	"math"
	"sync"

	"checkers/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MCTS runs a fixed number of UCT episodes with random rollouts. With more
// than one goroutine the episodes share one tree and virtual losses keep them
// apart.
type MCTS struct {
	settings
	root *node
}

func NewMCTS(options ...Option) *MCTS {
	return &MCTS{settings: newSettings(options)}
}

// SelectMove returns the most visited root move. The score is the mean
// reward of that move in percent, from the perspective of the side to move.
func (m *MCTS) SelectMove(board *game.Board) (Choice, bool) {
	return m.Simulate(board)
}

// Simulate runs the episodes from state. Only the State operations are used,
// so any position implementation can be searched.
func (m *MCTS) Simulate(state game.State) (Choice, bool) {
	m.metrics.Start("mcts", m.goroutines, m.cutoff)

	m.root = newNode(nil, game.Move{}, state.Player().Opponent(), state)
	m.iterate(state)

	var choice Choice
	best, ok := m.root.bestChild()
	if ok {
		choice = Choice{
			Score: int(math.Round(100 * best.meanReward())),
			Move:  best.move,
		}
	}

	m.last = m.metrics.Complete()
	m.last.Score = choice.Score
	log.Debug().Int("episodes", m.episodes).Int("nodes", m.last.Nodes).Int("score", choice.Score).Msg("mcts")
	return choice, ok
}

func (m *MCTS) iterate(state game.State) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(m.seed + uint64(i)))
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(state, rng)
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) simulate(state game.State, rng *rand.Rand) {
	leaf, leafState, expanded := selectThenExpand(m.root, state)
	if expanded {
		m.metrics.AddNode()
	}
	o := rollout(leafState, m.cutoff, m.evaluate, rng)
	backup(leaf, o)
}

func selectThenExpand(root *node, state game.State) (*node, game.State, bool) {
	parent := root
	child, state, expanded := parent.selectOrExpand(state)
	for !expanded && child != parent {
		parent = child
		child, state, expanded = parent.selectOrExpand(state)
	}
	return child, state, expanded
}

func rollout(state game.State, cutoff int, evaluate game.Evaluate, rng *rand.Rand) outcome {
	depth := 0
	// Rollout till game over or for cutoff number of moves
	for !state.GameOver() && depth < cutoff {
		moves := state.LegalMoves()
		state = state.Play(moves[rng.Intn(len(moves))]) // Random rollout policy
		depth++
	}

	if winner, ok := state.Winner(); ok {
		return outcome{player: winner, value: Win}
	}

	// At cutoff, the sign of the evaluation from the side to move decides
	score := evaluate(state)
	switch {
	case score > 0:
		return outcome{player: state.Player(), value: Win}
	case score < 0:
		return outcome{player: state.Player(), value: Loss}
	}
	return outcome{player: state.Player(), value: 0}
}

func backup(leaf *node, o outcome) {
	for n := leaf; n != nil; {
		n = n.backup(o)
	}
}
