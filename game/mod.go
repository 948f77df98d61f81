package game

// StateHash identifies a position (placement, side to move and forced
// continuation). History is not part of the hash.
type StateHash uint64

// State should be immutable - Play always returns a new copy.
type State interface {
	Player() Color
	LegalMoves() []Move
	Play(Move) *Board
	Hash() StateHash
	Winner() (Color, bool)
	GameOver() bool
	NumPiecesOf(Color) int
	NumKingsOf(Color) int
}

// Evaluate scores a state from the perspective of its side to move: positive
// values favor the side to move. Win/loss scoring belongs to the searcher.
type Evaluate func(State) int

var _ State = (*Board)(nil)
