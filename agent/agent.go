package agent

import (
	"errors"

	"checkers/experiments/metrics"
	"checkers/game"
)

// ErrNoMove is returned when an agent is asked to move in a position where it
// has no legal move.
var ErrNoMove = errors.New("agent: no legal move")

type Agent interface {
	// FindMove returns the move to play and the statistics of the search
	// that chose it.
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error)
}
