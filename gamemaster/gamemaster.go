package gamemaster

import (
	"checkers/game"
)

// Engine is the surface offered to game controllers, evaluators and user
// interfaces. Moves are validated before they reach the board.
type Engine interface {
	NewGame()
	PieceAt(row, col int) (game.Piece, bool)
	CurrentPlayer() game.Color
	LegalMoves() []game.Move
	ApplyMove(move game.Move) error
	IsGameOver() bool
	Winner() (game.Color, bool)
	MoveHistory() []game.Move
}

// Update describes one applied move and the resulting position.
type Update struct {
	Move     game.Move
	Player   game.Color // side that played Move
	Hash     game.StateHash
	GameOver bool
}

var _ Engine = (*LocalGame)(nil)
