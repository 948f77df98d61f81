package game

// Piece is a man or a king of one color. It has no identity beyond the square
// it occupies.
type Piece struct {
	Color Color
	King  bool
}

// Kinged returns the promoted version of p.
func (p Piece) Kinged() Piece {
	return Piece{Color: p.Color, King: true}
}

// Symbol is the text board marker: r/b for men, R/B for kings.
func (p Piece) Symbol() byte {
	switch {
	case p.Color == Red && p.King:
		return 'R'
	case p.Color == Red:
		return 'r'
	case p.King:
		return 'B'
	default:
		return 'b'
	}
}

func (p Piece) String() string {
	return string(p.Symbol())
}

// Square is the content of a playable square: either empty or occupied by a
// piece. The zero value is an empty square.
type Square struct {
	piece    Piece
	occupied bool
}

// EmptySquare returns an unoccupied square.
func EmptySquare() Square {
	return Square{}
}

// Occupied returns a square holding p.
func Occupied(p Piece) Square {
	return Square{piece: p, occupied: true}
}

// Piece returns the occupying piece, if any.
func (s Square) Piece() (Piece, bool) {
	return s.piece, s.occupied
}

// IsEmpty reports whether no piece occupies the square.
func (s Square) IsEmpty() bool {
	return !s.occupied
}

func (s Square) ownedBy(c Color) bool {
	return s.occupied && s.piece.Color == c
}
