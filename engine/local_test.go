package engine

import (
	"bestiary/game"
	"bestiary/searcher"
	"bestiary/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
)

// Red Gnomes on every even square only ever face their own pieces.
const redStuck = "GsG.G.G.G.G.G.G.G.G.G.G.G.G.G.R"

func TestAdjudicate(t *testing.T) {
	cases := []struct {
		name    string
		state   string
		outcome game.Outcome
		reason  Reason
	}{
		{"opening", "CYSYC.GGG............ggg.cysycB", game.Ongoing, InProgress},
		{"blue eliminated", "S.............................R", game.RedWins, Elimination},
		{"red eliminated", "s.............................R", game.BlueWins, Elimination},
		{"red cannot move", redStuck, game.BlueWins, NoMoves},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			outcome, reason := Adjudicate(game.MustDecode(tt.state))

			require.Equal(t, tt.outcome, outcome)
			require.Equal(t, tt.reason, reason)
		})
	}
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("random agents play legal moves to the end", func(t *testing.T) {
		e := NewLocalEngine(game.Initial(), agent.NewRandomAgent(3), agent.NewRandomAgent(4), 100)

		outcome, gameMetric, moveMetrics := e.Run()

		require.Len(t, moveMetrics, gameMetric.TotalMoves, "One move metric per move played")
		require.Equal(t, "Red", gameMetric.StartingPlayer)
		if outcome == game.Ongoing {
			require.Equal(t, 100, gameMetric.TotalMoves)
			require.Equal(t, MoveLimit.String(), gameMetric.Reason)
			require.Empty(t, gameMetric.Winner)
		} else {
			winner, _ := outcome.Winner()
			require.Equal(t, winner.String(), gameMetric.Winner)
			decided, _ := Adjudicate(e.State)
			require.Equal(t, outcome, decided, "Final state should carry the reported outcome")
		}
	})

	t.Run("minimax self-play is deterministic", func(t *testing.T) {
		newEngine := func() *LocalEngine {
			red := agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithMetrics()), 1)
			blue := agent.NewMinimaxAgent(searcher.NewMinimax(), 1)
			return NewLocalEngine(game.Initial(), red, blue, 60)
		}

		outcome1, metric1, moves1 := newEngine().Run()
		outcome2, metric2, moves2 := newEngine().Run()

		require.Equal(t, outcome1, outcome2)
		require.Equal(t, metric1.TotalMoves, metric2.TotalMoves)
		require.Equal(t, len(moves1), len(moves2))
		for i := range moves1 {
			require.Equal(t, moves1[i].Move, moves2[i].Move, "Move %d should repeat", i+1)
		}
		require.Equal(t, "Red", moves1[0].Player)
		require.Positive(t, moves1[0].Nodes, "Red's searcher collects metrics")
	})

	t.Run("already decided game plays no move", func(t *testing.T) {
		e := NewLocalEngine(game.MustDecode("S.............................R"), agent.NewRandomAgent(1), agent.NewRandomAgent(2), 10)

		outcome, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.RedWins, outcome)
		require.Empty(t, moveMetrics)
		require.Equal(t, "elimination", gameMetric.Reason)
	})

	t.Run("side without legal moves loses", func(t *testing.T) {
		e := NewLocalEngine(game.MustDecode(redStuck), agent.NewRandomAgent(1), agent.NewRandomAgent(2), 10)

		outcome, gameMetric, _ := e.Run()

		require.Equal(t, game.BlueWins, outcome)
		require.Equal(t, "Blue", gameMetric.Winner)
		require.Equal(t, "no legal move", gameMetric.Reason)
	})

	t.Run("move limit", func(t *testing.T) {
		e := NewLocalEngine(game.Initial(), agent.NewRandomAgent(1), agent.NewRandomAgent(2), 1)

		outcome, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.Ongoing, outcome)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, "move limit", gameMetric.Reason)
		require.Equal(t, game.Blue, e.State.Player())
	})

	t.Run("requires both agents", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocalEngine(game.Initial(), agent.NewRandomAgent(1), nil, 10)
		})
	})
}
