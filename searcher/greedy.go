package searcher

import (
	"checkers/game"
)

// Greedy scores every immediate successor with the evaluator and keeps the
// best one.
type Greedy struct {
	settings
}

func NewGreedy(options ...Option) *Greedy {
	return &Greedy{settings: newSettings(options)}
}

func (g *Greedy) SelectMove(board *game.Board) (Choice, bool) {
	g.metrics.Start("greedy", 1, 1)

	var best Choice
	found := false
	for _, alternative := range board.NextBoards() {
		g.metrics.AddNode()
		// Successors are scored for their own side to move
		negation := 1
		if board.SideToMove() != alternative.SideToMove() {
			negation = -1
		}
		score := negation * g.evaluate(alternative)
		if better(found, best, score) {
			move, _ := alternative.LastMove()
			best = Choice{Score: score, Move: move}
			found = true
		}
	}

	g.last = g.metrics.Complete()
	g.last.Score = best.Score
	return best, found
}
