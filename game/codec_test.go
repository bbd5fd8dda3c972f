package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const openingBlue = "CYSYC.GGG............ggg.cysycB"

func TestDecode(t *testing.T) {
	t.Run("standard opening", func(t *testing.T) {
		gs, err := Decode(openingBlue)

		require.NoError(t, err)
		require.Equal(t, Blue, gs.Player(), "Trailing B should give Blue the move")
		require.Equal(t, Occupied(Piece{Kind: Centaur, Color: Red}), gs.Cell(0), "Upper case letters are Red")
		require.Equal(t, Occupied(Piece{Kind: Sphinx, Color: Blue}), gs.Cell(27), "Lower case letters are Blue")
		require.True(t, gs.Cell(5).IsEmpty(), "Dots are empty cells")
	})

	t.Run("matches the generated opening", func(t *testing.T) {
		initial, err := NewGameState(Standard, Blue)
		require.NoError(t, err)

		gs, err := Decode(openingBlue)

		require.NoError(t, err)
		require.True(t, initial.Equal(gs), "Decoded opening should equal NewGameState")
	})

	malformed := []struct {
		name  string
		input string
	}{
		{"too short", "CYSYC.GGG............ggg.cysyB"},
		{"too long", "CYSYC.GGG............ggg.cysycBB"},
		{"empty", ""},
		{"missing marker", "CYSYC.GGG............ggg.cysyc."},
		{"lower case marker", "CYSYC.GGG............ggg.cysycb"},
		{"unknown symbol", "CYSYC.GGX............ggg.cysycR"},
		{"marker inside board", "CYSYC.GGR............ggg.cysycR"},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			gs, err := Decode(tt.input)

			require.ErrorIs(t, err, ErrMalformedState)
			require.Nil(t, gs)
		})
	}

	t.Run("rejects degenerate boards", func(t *testing.T) {
		gs, err := Board{Rows: 1, Columns: 0}.Decode("R")

		require.ErrorIs(t, err, ErrMalformedState, "A board without cells is not a game")
		require.Nil(t, gs)

		_, err = Board{Rows: 2, Columns: 5}.Decode("CYSYCcysycR")
		require.ErrorIs(t, err, ErrMalformedState)
	})

	t.Run("uses the board dimensions", func(t *testing.T) {
		board := Board{Rows: 4, Columns: 5}

		gs, err := board.Decode("CYSYC....................R")
		require.ErrorIs(t, err, ErrMalformedState, "25 cells do not fit a 4x5 board")
		require.Nil(t, gs)

		gs, err = board.Decode("CYSYC..........cysycR")
		require.NoError(t, err)
		require.Equal(t, board, gs.Board())
	})
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Run("literal survives decode then encode", func(t *testing.T) {
		for _, s := range []string{openingBlue, ".YSYC.GGG.Cg..........gg.cysycR", "..............................B"} {
			gs, err := Decode(s)
			require.NoError(t, err)
			require.Equal(t, s, Encode(gs))
		}
	})

	t.Run("every state reachable in two plies round-trips", func(t *testing.T) {
		states := []*GameState{Initial()}
		for _, m := range Initial().LegalMoves() {
			child := Initial().Play(m)
			states = append(states, child)
			for _, reply := range child.LegalMoves() {
				states = append(states, child.Play(reply))
			}
		}

		for _, s := range states {
			decoded, err := Decode(Encode(s))
			require.NoError(t, err)
			require.True(t, s.Equal(decoded), "decode(encode(s)) should equal s for %s", s)
		}
	})

	t.Run("larger board", func(t *testing.T) {
		board := Board{Rows: 8, Columns: 7}
		gs, err := NewGameState(board, Red)
		require.NoError(t, err)

		decoded, err := board.Decode(Encode(gs))

		require.NoError(t, err)
		require.True(t, gs.Equal(decoded))
	})
}
