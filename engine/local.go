package engine

import (
	"bestiary/experiments/metrics"
	"bestiary/game"
	"bestiary/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State    *game.GameState
	Agents   [2]agent.Agent // Indexed by game.Color
	MaxMoves int
}

func NewLocalEngine(state *game.GameState, red, blue agent.Agent, maxMoves int) *LocalEngine {
	if red == nil || blue == nil {
		panic("both sides need an agent")
	}
	if maxMoves <= 0 {
		panic("max moves must be positive")
	}
	return &LocalEngine{
		State:    state,
		Agents:   [2]agent.Agent{game.Red: red, game.Blue: blue},
		MaxMoves: maxMoves,
	}
}

// Run executes the entire game loop until the game is decided or the move
// limit is reached.
func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting: %s vs %s", e.State.Player(), e.Agents[game.Red].Name(), e.Agents[game.Blue].Name())

	outcome, reason := Adjudicate(e.State)
	step := 0
	for outcome == game.Ongoing && step < e.MaxMoves {
		player := e.State.Player()
		move, ok, searchMetric := e.Agents[player].FindMove(e.State)
		if !ok {
			// Adjudicate already rules out a stuck side; an agent declining
			// to move forfeits.
			log.Warn().Msgf("%s returned no move with legal moves available", e.Agents[player].Name())
			outcome, reason = game.WinFor(player.Opponent()), NoMoves
			break
		}

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})

		e.State = e.State.Play(move)
		log.Debug().Int("step", step).Str("player", player.String()).Str("move", move.String()).Uint64("hash", uint64(e.State.Hash())).Msg("move played")

		outcome, reason = Adjudicate(e.State)
	}

	if outcome == game.Ongoing {
		reason = MoveLimit
		log.Info().Msgf("stopped after %d moves without a winner", step)
	} else {
		log.Info().Msgf("game ended after %d moves: %s by %s", step, outcome, reason)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	gameMetric.Reason = reason.String()
	if winner, ok := outcome.Winner(); ok {
		gameMetric.Winner = winner.String()
	}
	return outcome, gameMetric, moveMetrics
}
