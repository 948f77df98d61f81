package game

import "fmt"

// Move is a single ply from one square to another. Moves are plain values:
// they do not reference a board and can be replayed against any board with a
// piece on the start square.
type Move struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// NewMove returns the move from (startRow, startCol) to (endRow, endCol).
func NewMove(startRow, startCol, endRow, endCol int) Move {
	return Move{StartRow: startRow, StartCol: startCol, EndRow: endRow, EndCol: endCol}
}

// IsCapture reports whether the move jumps over a square.
func (m Move) IsCapture() bool {
	d := m.EndRow - m.StartRow
	return d == 2 || d == -2
}

// CapturedSquare returns the midpoint of the move. Only meaningful when
// IsCapture is true.
func (m Move) CapturedSquare() (row, col int) {
	return (m.StartRow + m.EndRow) / 2, (m.StartCol + m.EndCol) / 2
}

func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return fmt.Sprintf("(%d,%d)%s(%d,%d)", m.StartRow, m.StartCol, sep, m.EndRow, m.EndCol)
}
