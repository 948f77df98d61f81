package game

// ApplyMove plays move on b: the piece is relocated, promoted when a man
// reaches the far row, and the jumped piece is removed. After a capture the
// turn stays with the mover while the moved piece can capture again.
//
// move must come from b.LegalMoves(); anything else leaves the board in an
// undefined state.
func (b *Board) ApplyMove(move Move) {
	start := index(move.StartRow, move.StartCol)
	end := index(move.EndRow, move.EndCol)
	b.squares[end] = b.squares[start]
	b.squares[start] = EmptySquare()
	if !b.kingAt(move.EndRow, move.EndCol) && b.canKing(move.EndRow, move.EndCol) {
		b.makeKing(move.EndRow, move.EndCol)
	}

	changeTurn := !move.IsCapture()
	if !changeTurn {
		capRow, capCol := move.CapturedSquare()
		b.squares[index(capRow, capCol)] = EmptySquare()

		if b.pieceCanStillCapture(move.EndRow, move.EndCol) {
			b.repeatRow = move.EndRow
			b.repeatCol = move.EndCol
			b.repeating = true
		} else {
			changeTurn = true
		}
	}

	b.history = append(b.history, move)

	if changeTurn {
		b.sideToMove = b.sideToMove.Opponent()
		b.repeating = false
	}
}

// Play returns a copy of b with move applied. b is left untouched.
func (b *Board) Play(move Move) *Board {
	next := b.Copy()
	next.ApplyMove(move)
	return next
}

// NextBoards returns one successor per legal move of the side to move, in move
// order.
func (b *Board) NextBoards() []*Board {
	moves := b.CurrentPlayerMoves()
	futures := make([]*Board, 0, len(moves))
	for _, m := range moves {
		futures = append(futures, b.Play(m))
	}
	return futures
}

// canKing reports whether the piece on (row, col) has reached its far row.
// The on-board check only guards the black branch; both branches are reached
// with on-board squares only, so the asymmetry is not observable.
func (b *Board) canKing(row, col int) bool {
	return (row == Red.homeRow() && b.colorAt(row, col, Red)) ||
		(row == Black.homeRow() && b.colorAt(row, col, Black) && OnBoard(row, col))
}

func (b *Board) makeKing(row, col int) {
	i := index(row, col)
	if p, ok := b.squares[i].Piece(); ok {
		b.squares[i] = Occupied(p.Kinged())
	}
}

// PlayerWins reports whether side has won: its opponent has no legal move.
// Whose turn it is does not matter, so a blocked opponent loses even while
// side is still to move and could unblock it.
func (b *Board) PlayerWins(side Color) bool {
	return len(b.LegalMovesOf(side.Opponent())) == 0
}

// GameOver reports whether either side has won.
func (b *Board) GameOver() bool {
	return b.PlayerWins(Red) || b.PlayerWins(Black)
}

// Winner returns the winning side once the game is over. If both sides are
// blocked the side not to move is reported.
func (b *Board) Winner() (Color, bool) {
	other := b.sideToMove.Opponent()
	if b.PlayerWins(other) {
		return other, true
	}
	if b.PlayerWins(b.sideToMove) {
		return b.sideToMove, true
	}
	return 0, false
}
