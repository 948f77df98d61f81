package game

// Color identifies one side of the board.
type Color int8

const (
	Black Color = iota
	Red
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == Red {
		return Black
	}
	return Red
}

// homeRow is the row a man of color c has to reach to be kinged.
func (c Color) homeRow() int {
	if c == Red {
		return MaxRow
	}
	return MinRow
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}
