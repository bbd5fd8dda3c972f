package agent

import (
	"bestiary/experiments/metrics"
	"bestiary/game"
	"fmt"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng  *rand.Rand
	seed uint64
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// The same seed replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, bool, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], true, metrics.SearchMetric{Candidates: len(moves)}
}

func (a *randomAgent) Name() string {
	return fmt.Sprintf("random(seed=%d)", a.seed)
}
