package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyMove(t *testing.T) {
	t.Run("regular move relocates the piece and passes the turn", func(t *testing.T) {
		b := NewBoard()

		b.ApplyMove(NewMove(5, 2, 4, 3))

		_, ok := b.PieceAt(5, 2)
		require.False(t, ok, "Start square should be vacated")
		p, ok := b.PieceAt(4, 3)
		require.True(t, ok, "End square should be occupied")
		require.Equal(t, Piece{Color: Black}, p)
		require.Equal(t, Red, b.SideToMove())
		require.Equal(t, []Move{NewMove(5, 2, 4, 3)}, b.History())
	})

	t.Run("capture removes the jumped piece", func(t *testing.T) {
		b := MustParseBoard(`........
........
........
........
.r......
..b.....
........
........
`)

		b.ApplyMove(NewMove(5, 2, 3, 0))

		_, ok := b.PieceAt(4, 1)
		require.False(t, ok, "Captured piece should be removed")
		require.Equal(t, 0, b.NumPiecesOf(Red))
		require.Equal(t, Red, b.SideToMove(), "Turn passes when no further capture exists")
		require.True(t, b.NthMove(0).IsCapture())
	})
}

func TestPlay(t *testing.T) {
	b := NewBoard()

	next := b.Play(NewMove(5, 6, 4, 7))

	require.Equal(t, initialLayout, b.String(), "Play should not modify the receiver")
	require.Equal(t, 1, next.NumMovesMade())
	require.Equal(t, Red, next.Player())
}

func TestTerminalDetection(t *testing.T) {
	t.Run("black without pieces loses", func(t *testing.T) {
		b := MustParseBoard(`.r......
........
...r....
........
........
........
........
........
`)

		require.True(t, b.GameOver())
		winner, ok := b.Winner()
		require.True(t, ok)
		require.Equal(t, Red, winner)
		require.True(t, b.PlayerWins(Red))
		require.False(t, b.PlayerWins(Black))
		require.Empty(t, b.NextBoards(), "Defeated side to move has no successors")
	})

	t.Run("blocked side loses", func(t *testing.T) {
		b := MustParseBoard(`........
........
........
........
........
..r.....
.r......
b.......
`)

		require.Empty(t, b.LegalMoves(), "Black man on (7,0) is blocked by the red man")
		require.True(t, b.GameOver())
		winner, ok := b.Winner()
		require.True(t, ok)
		require.Equal(t, Red, winner)
	})

	t.Run("blocked waiting side loses", func(t *testing.T) {
		b := MustParseBoard(`........
........
........
........
........
..b.....
........
r.......
`)

		require.NotEmpty(t, b.LegalMoves(), "Black is to move and can move")
		require.Empty(t, b.LegalMovesOf(Red), "The red man on (7,0) has nowhere to go")
		require.True(t, b.PlayerWins(Black), "The turn does not matter")
		require.True(t, b.GameOver())
		winner, ok := b.Winner()
		require.True(t, ok)
		require.Equal(t, Black, winner)
	})

	t.Run("capturing the last piece ends the game", func(t *testing.T) {
		b := MustParseBoard(`........
........
........
........
.r......
..b.....
........
........
`)

		require.False(t, b.GameOver())
		b.ApplyMove(NewMove(5, 2, 3, 0))

		require.True(t, b.GameOver())
		winner, _ := b.Winner()
		require.Equal(t, Black, winner)
	})

	t.Run("ongoing game has no winner", func(t *testing.T) {
		_, ok := NewBoard().Winner()
		require.False(t, ok)
		require.False(t, NewBoard().GameOver())
	})
}
