package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"checkers/game"
	"checkers/utils"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// LocalGame is the single live game. It is safe for concurrent use.
type LocalGame struct {
	mu       sync.Mutex
	board    *game.Board
	updates  []Update
	gameOver bool
}

// NewLocalGame starts a game from the initial position.
func NewLocalGame() *LocalGame {
	return NewLocalGameFrom(game.NewBoard())
}

// NewLocalGameFrom starts a game from a copy of b.
func NewLocalGameFrom(b *game.Board) *LocalGame {
	g := &LocalGame{board: b.Copy()}
	g.gameOver = g.board.GameOver()
	return g
}

// NewGame resets the game to the initial position and drops pending updates.
func (g *LocalGame) NewGame() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.board = game.NewBoard()
	g.updates = nil
	g.gameOver = false
}

func (g *LocalGame) PieceAt(row, col int) (game.Piece, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.PieceAt(row, col)
}

func (g *LocalGame) CurrentPlayer() game.Color {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.SideToMove()
}

func (g *LocalGame) LegalMoves() []game.Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver {
		return nil
	}
	return g.board.LegalMoves()
}

// ApplyMove plays move for the current player. Moves outside the legal set
// are rejected and leave the game unchanged.
func (g *LocalGame) ApplyMove(move game.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver {
		return ErrGameOver
	}

	legalMoves := g.board.LegalMoves()
	if utils.FindIndex(legalMoves, move) < 0 {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, move, g.board.SideToMove())
	}

	player := g.board.SideToMove()
	g.board.ApplyMove(move)
	g.gameOver = g.board.GameOver()

	g.updates = append(g.updates, Update{
		Move:     move,
		Player:   player,
		Hash:     g.board.Hash(),
		GameOver: g.gameOver,
	})
	return nil
}

func (g *LocalGame) IsGameOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.gameOver
}

func (g *LocalGame) Winner() (game.Color, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.Winner()
}

func (g *LocalGame) MoveHistory() []game.Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.History()
}

// Board returns a copy of the current position.
func (g *LocalGame) Board() *game.Board {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.Copy()
}

// NextUpdate pops the oldest unread update. It returns false immediately when
// there is none.
func (g *LocalGame) NextUpdate() (Update, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.updates) == 0 {
		return Update{}, false
	}
	u := g.updates[0]
	g.updates = g.updates[1:]
	return u, true
}
