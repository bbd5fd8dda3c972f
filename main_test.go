package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func playConfig() config {
	return config{mode: "play", depth: 1, maxDecrement: 1, minDecrement: 3, goroutines: 1, human: "blue"}
}

func TestPlay(t *testing.T) {
	t.Run("human move and agent reply", func(t *testing.T) {
		var out bytes.Buffer

		err := run(playConfig(), strings.NewReader("29 19\nquit\n"), &out)

		require.NoError(t, err)
		require.Contains(t, out.String(), "AI plays")
		require.Contains(t, out.String(), "Blue to move")
	})

	t.Run("illegal and malformed input keep the game going", func(t *testing.T) {
		var out bytes.Buffer

		err := run(playConfig(), strings.NewReader("27 17\nnonsense\nrules\n"), &out)

		require.NoError(t, err, "End of input ends the session")
		require.Contains(t, out.String(), "illegal move")
		require.Contains(t, out.String(), "expected \"<from> <to>\"")
		require.Contains(t, out.String(), "Sphinx: Moves 1 square")
	})

	t.Run("finishes a decided game", func(t *testing.T) {
		var out bytes.Buffer
		cfg := playConfig()
		cfg.state = "g.....G.......................B"

		err := run(cfg, strings.NewReader("0 6\n"), &out)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Blue wins (elimination)")
	})

	t.Run("agent opens when it moves first", func(t *testing.T) {
		var out bytes.Buffer
		cfg := playConfig()
		cfg.state = "CYSYC.GGG............ggg.cysycR"

		err := run(cfg, strings.NewReader("quit\n"), &out)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Blue to move")
	})

	t.Run("malformed start state", func(t *testing.T) {
		cfg := playConfig()
		cfg.state = "nope"

		err := run(cfg, strings.NewReader(""), &bytes.Buffer{})

		require.Error(t, err)
	})
}

func TestRunUnknownMode(t *testing.T) {
	err := run(config{mode: "nope"}, strings.NewReader(""), &bytes.Buffer{})

	require.ErrorContains(t, err, "unknown mode")
}
