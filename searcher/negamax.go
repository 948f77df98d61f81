package searcher

import (
	"checkers/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// NegaMax searches the full game tree to a fixed depth. Scores are always from
// the perspective of the side to move and are negated on the way up.
type NegaMax struct {
	settings
}

func NewNegaMax(options ...Option) *NegaMax {
	return &NegaMax{settings: newSettings(options)}
}

// SelectMove returns the best move and its score. Decided positions score
// MaxScore or MinScore and depth-0 positions get the evaluator's score; in
// those cases the reported move is the last one played, and ok is false if
// there is none.
func (n *NegaMax) SelectMove(board *game.Board) (Choice, bool) {
	n.metrics.Start("negamax", n.goroutines, n.depth)

	var choice Choice
	var ok bool
	if n.goroutines > 1 {
		choice, ok = n.selectParallel(board, n.depth)
	} else {
		choice, ok = n.selectHelp(board, n.depth)
	}

	n.last = n.metrics.Complete()
	n.last.Score = choice.Score
	log.Debug().Int("depth", n.depth).Int("nodes", n.last.Nodes).Int("score", choice.Score).Msg("negamax")
	return choice, ok
}

// leaf scores positions that are not expanded: decided games and the depth
// limit.
func (n *NegaMax) leaf(board *game.Board, depth int) (Choice, bool, bool) {
	side := board.SideToMove()
	last, hasLast := board.LastMove()
	switch {
	case board.PlayerWins(side):
		return Choice{Score: MaxScore, Move: last}, hasLast, true
	case board.PlayerWins(side.Opponent()):
		return Choice{Score: MinScore, Move: last}, hasLast, true
	case depth == 0:
		return Choice{Score: n.evaluate(board), Move: last}, hasLast, true
	}
	return Choice{}, false, false
}

func (n *NegaMax) selectHelp(board *game.Board, depth int) (Choice, bool) {
	if choice, ok, isLeaf := n.leaf(board, depth); isLeaf {
		return choice, ok
	}

	var best Choice
	found := false
	for _, alternative := range board.NextBoards() {
		n.metrics.AddNode()
		reply, _ := n.selectHelp(alternative, depth-1)
		scoreFor := -reply.Score
		if better(found, best, scoreFor) {
			move, _ := alternative.LastMove()
			best = Choice{Score: scoreFor, Move: move}
			found = true
		}
	}
	return best, found
}

// selectParallel searches every root successor in its own goroutine. Each
// successor is an independent copy and results are merged in move order, so
// the outcome matches selectHelp.
func (n *NegaMax) selectParallel(board *game.Board, depth int) (Choice, bool) {
	if choice, ok, isLeaf := n.leaf(board, depth); isLeaf {
		return choice, ok
	}

	alternatives := board.NextBoards()
	scores := make([]int, len(alternatives))

	var g errgroup.Group
	g.SetLimit(n.goroutines)
	for i, alternative := range alternatives {
		n.metrics.AddNode()
		g.Go(func() error {
			reply, _ := n.selectHelp(alternative, depth-1)
			scores[i] = -reply.Score
			return nil
		})
	}
	g.Wait()

	var best Choice
	found := false
	for i, alternative := range alternatives {
		if better(found, best, scores[i]) {
			move, _ := alternative.LastMove()
			best = Choice{Score: scores[i], Move: move}
			found = true
		}
	}
	return best, found
}
