package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const initialLayout = `.r.r.r.r
r.r.r.r.
.r.r.r.r
........
........
b.b.b.b.
.b.b.b.b
b.b.b.b.
`

func TestNewBoard(t *testing.T) {
	t.Run("initial placement", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, initialLayout, b.String(), "Red should fill the top three rows and black the bottom three")
		require.Equal(t, 12, b.NumPiecesOf(Red), "Red should start with 12 men")
		require.Equal(t, 12, b.NumPiecesOf(Black), "Black should start with 12 men")
		require.Equal(t, 0, b.NumKingsOf(Red), "No kings at the start")
		require.Equal(t, Black, b.SideToMove(), "Black should move first")
		require.False(t, b.TurnIsRepeating(), "No forced continuation at the start")
		require.Equal(t, 0, b.NumMovesMade(), "History should be empty")
	})

	t.Run("non-playable squares are empty", func(t *testing.T) {
		b := NewBoard()
		for row := MinRow; row <= MaxRow; row++ {
			for col := MinCol; col <= MaxCol; col++ {
				if (row+col)%2 == 0 {
					_, ok := b.PieceAt(row, col)
					require.False(t, ok, "Square (%d,%d) is not playable", row, col)
				}
			}
		}
	})

	t.Run("off-board squares are empty", func(t *testing.T) {
		b := NewBoard()
		_, ok := b.PieceAt(-1, 0)
		require.False(t, ok)
		_, ok = b.PieceAt(8, 1)
		require.False(t, ok)
	})
}

func TestSlotMapping(t *testing.T) {
	seen := map[[2]int]bool{}
	for i := 0; i < NumSquares; i++ {
		row, col := rowOf(i), colOf(i)
		require.True(t, Playable(row, col), "Slot %d should map to a playable square", i)
		require.Equal(t, i, index(row, col), "Slot %d should round trip", i)
		seen[[2]int{row, col}] = true
	}
	require.Len(t, seen, NumSquares, "Every slot should map to a distinct square")
}

func TestBoardCopy(t *testing.T) {
	t.Run("copy does not alias the original", func(t *testing.T) {
		b := NewBoard()
		dup := b.Copy()

		dup.ApplyMove(NewMove(5, 0, 4, 1))

		require.Equal(t, initialLayout, b.String(), "Original placement should not change")
		require.Equal(t, 0, b.NumMovesMade(), "Original history should not change")
		require.Equal(t, Black, b.SideToMove(), "Original turn should not change")
		require.Equal(t, 1, dup.NumMovesMade())
		require.Equal(t, Red, dup.SideToMove())
	})

	t.Run("copy keeps turn, forced continuation and history", func(t *testing.T) {
		b := multiJumpBoard(t)
		b.ApplyMove(NewMove(7, 6, 6, 7))
		b.ApplyMove(NewMove(0, 1, 2, 3))

		dup := b.Copy()
		row, col, ok := dup.ForcedContinuation()

		require.True(t, ok, "Forced continuation should be copied")
		require.Equal(t, 2, row)
		require.Equal(t, 3, col)
		require.Equal(t, b.SideToMove(), dup.SideToMove())
		require.Equal(t, b.History(), dup.History())
		require.Equal(t, b.Hash(), dup.Hash())
	})

	t.Run("history returned to callers is a copy", func(t *testing.T) {
		b := NewBoard()
		b.ApplyMove(NewMove(5, 0, 4, 1))

		history := b.History()
		history[0] = Move{}

		require.Equal(t, NewMove(5, 0, 4, 1), b.NthMove(0))
	})
}

func TestBoardEqualAndHash(t *testing.T) {
	t.Run("equality ignores turn and history", func(t *testing.T) {
		a := NewBoard()
		b := NewBoard()
		b.sideToMove = Red
		b.history = []Move{NewMove(5, 0, 4, 1)}

		require.True(t, a.Equal(b))
		require.False(t, a.Equal(nil))
	})

	t.Run("hash distinguishes side to move", func(t *testing.T) {
		a := NewBoard()
		b := NewBoard()
		require.Equal(t, a.Hash(), b.Hash(), "Identical positions should hash equally")

		b.sideToMove = Red
		require.NotEqual(t, a.Hash(), b.Hash(), "Side to move is part of the position")
	})

	t.Run("hash ignores history", func(t *testing.T) {
		a := NewBoard()
		b := NewBoard()
		b.history = []Move{NewMove(5, 0, 4, 1)}
		require.Equal(t, a.Hash(), b.Hash())
	})
}

func TestLastMove(t *testing.T) {
	b := NewBoard()
	_, ok := b.LastMove()
	require.False(t, ok, "A fresh board has no last move")

	b.ApplyMove(NewMove(5, 2, 4, 3))
	last, ok := b.LastMove()
	require.True(t, ok)
	require.Equal(t, NewMove(5, 2, 4, 3), last)
}
