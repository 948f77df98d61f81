package game

import (
	"encoding/binary"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

const (
	MinRow = 0
	MaxRow = 7
	MinCol = 0
	MaxCol = 7

	SideSquares = MaxRow - MinRow + 1
	NumSquares  = SideSquares * SideSquares / 2

	numStartRows      = (SideSquares - 2) / 2
	numStartingPieces = numStartRows * SideSquares / 2
)

// Board is a checkers position: the 32 playable squares, the side to move, the
// square of a piece that must continue capturing (if any) and the moves played
// so far.
//
// A Board is a snapshot. Only ApplyMove changes it, and search works on
// copies (see Copy, Play and NextBoards).
type Board struct {
	squares    [NumSquares]Square
	sideToMove Color
	repeating  bool // a multi-capture is in progress
	repeatRow  int
	repeatCol  int
	history    []Move
}

// NewBoard returns the initial position: red men on the top three rows, black
// men on the bottom three rows, black to move.
func NewBoard() *Board {
	b := &Board{}
	b.reset()
	return b
}

func (b *Board) reset() {
	for i := 0; i < numStartingPieces; i++ {
		b.squares[i] = Occupied(Piece{Color: Red})
	}
	blackStart := NumSquares - numStartingPieces
	for i := numStartingPieces; i < blackStart; i++ {
		b.squares[i] = EmptySquare()
	}
	for i := blackStart; i < NumSquares; i++ {
		b.squares[i] = Occupied(Piece{Color: Black})
	}
	b.sideToMove = Black
	b.repeating = false
	b.history = nil
}

// Copy returns a deep copy of the board. The copy shares no mutable state with
// b.
func (b *Board) Copy() *Board {
	dup := *b // squares is an array and is copied by value
	dup.history = slices.Clone(b.history)
	return &dup
}

// Playable reports whether (row, col) is one of the 32 squares a piece can
// stand on.
func Playable(row, col int) bool {
	return OnBoard(row, col) && (row+col)%2 == 1
}

// OnBoard reports whether (row, col) lies within the 8x8 grid.
func OnBoard(row, col int) bool {
	return row >= MinRow && row <= MaxRow && col >= MinCol && col <= MaxCol
}

// index maps a playable square to its slot.
func index(row, col int) int {
	return (row*SideSquares + col) / 2
}

func rowOf(i int) int {
	return i / (SideSquares / 2)
}

func colOf(i int) int {
	return (i%(SideSquares/2))*2 + (1 - rowOf(i)%2)
}

// squareAt returns the content of (row, col). Non-playable and off-board
// squares are always empty.
func (b *Board) squareAt(row, col int) Square {
	if !Playable(row, col) {
		return EmptySquare()
	}
	return b.squares[index(row, col)]
}

// PieceAt returns the piece on (row, col), if any.
func (b *Board) PieceAt(row, col int) (Piece, bool) {
	return b.squareAt(row, col).Piece()
}

func (b *Board) colorAt(row, col int, c Color) bool {
	return b.squareAt(row, col).ownedBy(c)
}

func (b *Board) kingAt(row, col int) bool {
	p, ok := b.PieceAt(row, col)
	return ok && p.King
}

// SideToMove returns the color whose turn it is.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// Player returns the side to move.
func (b *Board) Player() Color {
	return b.sideToMove
}

// IsTurnFor reports whether it is c's turn.
func (b *Board) IsTurnFor(c Color) bool {
	return b.sideToMove == c
}

// TurnIsRepeating reports whether the side to move is in the middle of a
// multi-capture.
func (b *Board) TurnIsRepeating() bool {
	return b.repeating
}

// ForcedContinuation returns the square of the piece that must keep capturing
// before the turn can pass.
func (b *Board) ForcedContinuation() (row, col int, ok bool) {
	if !b.repeating {
		return 0, 0, false
	}
	return b.repeatRow, b.repeatCol, true
}

// NumMovesMade returns the length of the move history.
func (b *Board) NumMovesMade() int {
	return len(b.history)
}

// NthMove returns the nth move played. Panics unless 0 <= n < NumMovesMade().
func (b *Board) NthMove(n int) Move {
	return b.history[n]
}

// LastMove returns the most recent move.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

// History returns a copy of the moves played since the start of the game.
func (b *Board) History() []Move {
	return slices.Clone(b.history)
}

// NumPiecesOf counts the pieces of color c.
func (b *Board) NumPiecesOf(c Color) int {
	count := 0
	for _, sq := range b.squares {
		if sq.ownedBy(c) {
			count++
		}
	}
	return count
}

// NumKingsOf counts the kings of color c.
func (b *Board) NumKingsOf(c Color) int {
	count := 0
	for _, sq := range b.squares {
		if p, ok := sq.Piece(); ok && p.Color == c && p.King {
			count++
		}
	}
	return count
}

// Equal reports whether both boards have the same piece placement. Turn,
// forced continuation and history are ignored.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.squares == other.squares
}

// Hash returns a digest of the placement, side to move and forced
// continuation.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash side to move
	binary.Write(hasher, binary.LittleEndian, int64(b.sideToMove))

	// Hash forced continuation
	if b.repeating {
		binary.Write(hasher, binary.LittleEndian, int64(index(b.repeatRow, b.repeatCol)))
	} else {
		binary.Write(hasher, binary.LittleEndian, int64(-1))
	}

	// Hash placement
	for _, sq := range b.squares {
		code := int8(0)
		if p, ok := sq.Piece(); ok {
			code = int8(p.Symbol())
		}
		binary.Write(hasher, binary.LittleEndian, code)
	}

	return StateHash(hasher.Sum64())
}
