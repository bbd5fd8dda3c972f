package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsGameOver(t *testing.T) {
	cases := []struct {
		name     string
		state    string
		expected Outcome
	}{
		{"opening", openingBlue, Ongoing},
		{"red eliminated", "...........................g..R", BlueWins},
		{"blue eliminated", "S.............................B", RedWins},
		{"both eliminated reports blue", "..............................R", BlueWins},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, MustDecode(tt.state).IsGameOver())
		})
	}
}

func TestHasNoPieces(t *testing.T) {
	gs := MustDecode("S.............................B")

	require.False(t, gs.HasNoPieces(Red))
	require.True(t, gs.HasNoPieces(Blue))
}

func TestOutcomeWinner(t *testing.T) {
	winner, ok := RedWins.Winner()
	require.True(t, ok)
	require.Equal(t, Red, winner)

	winner, ok = BlueWins.Winner()
	require.True(t, ok)
	require.Equal(t, Blue, winner)

	_, ok = Ongoing.Winner()
	require.False(t, ok)

	require.Equal(t, RedWins, WinFor(Red))
	require.Equal(t, BlueWins, WinFor(Blue))
}

func TestRulesText(t *testing.T) {
	lines := RulesText()

	require.Len(t, lines, 5)
	require.Equal(t, "Sphinx: Moves 1 square forward, backward, left, and right", lines[0])
}
