package game

// direction is a diagonal step expressed in rows and columns.
type direction struct {
	dRow int
	dCol int
}

var (
	downRight = direction{1, 1}
	downLeft  = direction{1, -1}
	upLeft    = direction{-1, -1}
	upRight   = direction{-1, 1}

	// Candidate order is part of the observable move order.
	kingDirections     = []direction{downRight, downLeft, upLeft, upRight}
	redManDirections   = []direction{downRight, downLeft}
	blackManDirections = []direction{upRight, upLeft}
)

// directionsAt returns the directions the piece on (row, col) may travel in.
func (b *Board) directionsAt(row, col int) []direction {
	p, ok := b.PieceAt(row, col)
	switch {
	case !ok:
		return nil
	case p.King:
		return kingDirections
	case p.Color == Red:
		return redManDirections
	default:
		return blackManDirections
	}
}

// LegalMoves returns the legal moves of the side to move.
func (b *Board) LegalMoves() []Move {
	return b.CurrentPlayerMoves()
}

// CurrentPlayerMoves returns the legal moves of the side to move.
func (b *Board) CurrentPlayerMoves() []Move {
	return b.LegalMovesOf(b.sideToMove)
}

// LegalMovesOf returns the legal moves of side. Captures are mandatory: when
// at least one capture exists only captures are returned.
func (b *Board) LegalMovesOf(side Color) []Move {
	if captures := b.CaptureMoves(side); len(captures) > 0 {
		return captures
	}
	return b.RegularMoves(side)
}

// continuing reports whether side is bound to the forced continuation square.
// The restriction only concerns the side in the middle of its turn.
func (b *Board) continuing(side Color) bool {
	return b.repeating && b.sideToMove == side
}

// CaptureMoves returns every legal jump of side, in board-scan order. During a
// forced continuation only the capturing piece is considered.
func (b *Board) CaptureMoves(side Color) []Move {
	var moves []Move
	if b.continuing(side) {
		return b.appendCaptureMoves(moves, side, b.repeatRow, b.repeatCol)
	}
	for i := 0; i < NumSquares; i++ {
		row, col := rowOf(i), colOf(i)
		if b.colorAt(row, col, side) {
			moves = b.appendCaptureMoves(moves, side, row, col)
		}
	}
	return moves
}

// RegularMoves returns every legal non-capturing step of side, in board-scan
// order. There are none during a forced continuation.
func (b *Board) RegularMoves(side Color) []Move {
	var moves []Move
	if b.continuing(side) {
		return moves
	}
	for i := 0; i < NumSquares; i++ {
		row, col := rowOf(i), colOf(i)
		if b.colorAt(row, col, side) {
			moves = b.appendRegularMoves(moves, row, col)
		}
	}
	return moves
}

func (b *Board) appendCaptureMoves(moves []Move, side Color, row, col int) []Move {
	for _, d := range b.directionsAt(row, col) {
		m := NewMove(row, col, row+2*d.dRow, col+2*d.dCol)
		if !OnBoard(m.EndRow, m.EndCol) || !b.squareAt(m.EndRow, m.EndCol).IsEmpty() {
			continue
		}
		capRow, capCol := m.CapturedSquare()
		if b.colorAt(capRow, capCol, side.Opponent()) {
			moves = append(moves, m)
		}
	}
	return moves
}

func (b *Board) appendRegularMoves(moves []Move, row, col int) []Move {
	for _, d := range b.directionsAt(row, col) {
		m := NewMove(row, col, row+d.dRow, col+d.dCol)
		if OnBoard(m.EndRow, m.EndCol) && b.squareAt(m.EndRow, m.EndCol).IsEmpty() {
			moves = append(moves, m)
		}
	}
	return moves
}

// pieceCanStillCapture reports whether the side to move has a jump from
// (row, col).
func (b *Board) pieceCanStillCapture(row, col int) bool {
	if !b.colorAt(row, col, b.sideToMove) {
		return false
	}
	return len(b.appendCaptureMoves(nil, b.sideToMove, row, col)) > 0
}
