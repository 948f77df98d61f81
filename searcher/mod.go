package searcher

import (
	"fmt"
	"math"

	"checkers/experiments/metrics"
	"checkers/game"
)

// Scores reported for decided positions. They are symmetric around zero so a
// negamax sign flip maps one onto the other.
const (
	MaxScore = math.MaxInt32
	MinScore = -MaxScore
)

// Choice is a move together with its score from the perspective of the side
// to move at the searched position.
type Choice struct {
	Score int
	Move  game.Move
}

type Searcher interface {
	// SelectMove returns the best choice for the side to move. ok is false
	// when no move can be reported.
	SelectMove(board *game.Board) (choice Choice, ok bool)
	// NodesExpanded returns the successors generated by the last SelectMove.
	NodesExpanded() int
	// LastSearch returns the statistics of the last SelectMove.
	LastSearch() metrics.SearchMetric
}

// New builds the searcher registered under name ("greedy", "negamax" or
// "mcts").
func New(name string, options ...Option) (Searcher, error) {
	switch name {
	case "greedy":
		return NewGreedy(options...), nil
	case "negamax":
		return NewNegaMax(options...), nil
	case "mcts":
		return NewMCTS(options...), nil
	default:
		return nil, fmt.Errorf("unknown searcher %q", name)
	}
}

// better reports whether score replaces the current best. Ties keep the
// first-encountered choice.
func better(found bool, best Choice, score int) bool {
	return !found || best.Score < score
}
