package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type evaluationAgent struct {
	searcher searcher.Searcher
}

// NewEvaluationAgent returns an agent that plays the searcher's choice.
func NewEvaluationAgent(s searcher.Searcher) Agent {
	return evaluationAgent{searcher: s}
}

func (a evaluationAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	legalMoves := board.LegalMoves()
	if len(legalMoves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrNoMove
	}

	choice, ok := a.searcher.SelectMove(board)
	// Decided positions report the move that led to them, not a move to play
	if !ok || !slices.Contains(legalMoves, choice.Move) {
		log.Warn().Msgf("searcher returned no playable move (ok=%t, move=%s), falling back to %s", ok, choice.Move, legalMoves[0])
		return legalMoves[0], a.searcher.LastSearch(), nil
	}
	return choice.Move, a.searcher.LastSearch(), nil
}
