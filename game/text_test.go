package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("round trip of the initial position", func(t *testing.T) {
		b, err := ParseBoard(initialLayout)

		require.NoError(t, err)
		require.True(t, NewBoard().Equal(b), "Parsed board should equal the initial position")
		require.Equal(t, initialLayout, b.String())
		require.Equal(t, Black, b.SideToMove(), "Parsed boards start with black to move")
	})

	t.Run("round trip with kings", func(t *testing.T) {
		layout := `.R......
........
...r....
........
........
..b.....
........
......B.
`

		b, err := ParseBoard(layout)
		require.NoError(t, err)
		require.Equal(t, layout, b.String())
		require.Equal(t, 1, b.NumKingsOf(Red))
		require.Equal(t, 1, b.NumKingsOf(Black))

		again, err := ParseBoard(b.String())
		require.NoError(t, err)
		require.True(t, b.Equal(again))
	})

	t.Run("characters on non-playable squares are ignored", func(t *testing.T) {
		layout := strings.ReplaceAll(initialLayout, ".", "#")
		// restore the empty playable squares of rows 3 and 4
		rows := strings.Split(layout, "\n")
		rows[3] = ".#.#.#.#"
		rows[4] = "#.#.#.#."
		b, err := ParseBoard(strings.Join(rows, "\n"))

		require.NoError(t, err)
		require.Equal(t, initialLayout, b.String())
	})

	t.Run("missing trailing newline", func(t *testing.T) {
		b, err := ParseBoard(strings.TrimSuffix(initialLayout, "\n"))
		require.NoError(t, err)
		require.True(t, NewBoard().Equal(b))
	})

	t.Run("several trailing newlines", func(t *testing.T) {
		b, err := ParseBoard(NewBoard().String() + "\n\n")
		require.NoError(t, err)
		require.True(t, NewBoard().Equal(b))
	})

	t.Run("non-ASCII characters on non-playable squares", func(t *testing.T) {
		rows := strings.Split(initialLayout, "\n")
		rows[4] = "é.·.·.·."
		b, err := ParseBoard(strings.Join(rows, "\n"))

		require.NoError(t, err, "Rows are eight characters, whatever their byte length")
		require.Equal(t, initialLayout, b.String())
	})

	t.Run("non-ASCII character on a playable square", func(t *testing.T) {
		rows := strings.Split(initialLayout, "\n")
		rows[4] = "·é......"
		_, err := ParseBoard(strings.Join(rows, "\n"))

		require.NotErrorIs(t, err, ErrColumnCount)
		var charErr *InvalidCharacterError
		require.ErrorAs(t, err, &charErr)
		require.Equal(t, 'é', charErr.Char)
		require.Equal(t, 4, charErr.Row)
		require.Equal(t, 1, charErr.Col)
		require.Contains(t, err.Error(), "'é'")
	})

	t.Run("wrong number of rows", func(t *testing.T) {
		_, err := ParseBoard("........\n........\n")
		require.ErrorIs(t, err, ErrRowCount)
	})

	t.Run("wrong number of columns", func(t *testing.T) {
		layout := strings.Replace(initialLayout, ".r.r.r.r", ".r.r.r.r.", 1)
		_, err := ParseBoard(layout)
		require.ErrorIs(t, err, ErrColumnCount)
	})

	t.Run("invalid character", func(t *testing.T) {
		layout := strings.Replace(initialLayout, ".r.r.r.r", ".x.r.r.r", 1)
		b, err := ParseBoard(layout)

		require.Nil(t, b, "No partial board on failure")
		var charErr *InvalidCharacterError
		require.True(t, errors.As(err, &charErr))
		require.Equal(t, 'x', charErr.Char)
		require.Equal(t, 0, charErr.Row)
		require.Equal(t, 1, charErr.Col)
		require.Contains(t, err.Error(), "'x'")
	})

	t.Run("must parse panics on bad input", func(t *testing.T) {
		require.Panics(t, func() {
			MustParseBoard("")
		})
	})
}
