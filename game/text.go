package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRowCount    = errors.New("wrong number of rows")
	ErrColumnCount = errors.New("wrong number of columns")
)

// InvalidCharacterError reports a character on a playable square that is not
// a piece marker.
type InvalidCharacterError struct {
	Row  int
	Col  int
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid input character %q at row %d, column %d", e.Char, e.Row, e.Col)
}

// ParseBoard builds a board from 8 lines of 8 characters. On playable squares
// '.' is empty, 'r'/'b' are red/black men and 'R'/'B' are kings; other squares
// are ignored but must be present. Rows are measured in characters, not
// bytes. Trailing newlines are allowed. The parsed board has black to move
// and no history.
func ParseBoard(src string) (*Board, error) {
	rows := strings.Split(strings.TrimRight(src, "\n"), "\n")
	if len(rows) != SideSquares {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrRowCount, len(rows), SideSquares)
	}

	b := &Board{sideToMove: Black}
	for row, text := range rows {
		line := []rune(text)
		if len(line) != SideSquares {
			return nil, fmt.Errorf("%w: row %d has %d, want %d", ErrColumnCount, row, len(line), SideSquares)
		}
		for col := 0; col < len(line); col++ {
			if !Playable(row, col) {
				continue
			}
			sq, err := parseSquare(line[col])
			if err != nil {
				return nil, &InvalidCharacterError{Row: row, Col: col, Char: line[col]}
			}
			b.squares[index(row, col)] = sq
		}
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on malformed input.
func MustParseBoard(src string) *Board {
	b, err := ParseBoard(src)
	if err != nil {
		panic(err)
	}
	return b
}

var errUnknownMarker = errors.New("unknown marker")

func parseSquare(c rune) (Square, error) {
	switch c {
	case '.':
		return EmptySquare(), nil
	case 'r':
		return Occupied(Piece{Color: Red}), nil
	case 'b':
		return Occupied(Piece{Color: Black}), nil
	case 'R':
		return Occupied(Piece{Color: Red, King: true}), nil
	case 'B':
		return Occupied(Piece{Color: Black, King: true}), nil
	default:
		return EmptySquare(), errUnknownMarker
	}
}

// String renders the board in the format read by ParseBoard.
func (b *Board) String() string {
	var s strings.Builder
	for row := MinRow; row <= MaxRow; row++ {
		for col := MinCol; col <= MaxCol; col++ {
			if p, ok := b.PieceAt(row, col); ok {
				s.WriteByte(p.Symbol())
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
