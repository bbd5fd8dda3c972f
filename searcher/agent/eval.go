package agent

import (
	"bestiary/experiments/metrics"
	"bestiary/game"
	"bestiary/searcher"
	"fmt"
)

type minimaxAgent struct {
	sides [2]*searcher.Minimax // Indexed by game.Color
	depth int
}

// NewMinimaxAgent returns an agent that plays the searcher's best move at a
// fixed depth for whichever side is to move.
func NewMinimaxAgent(minimax *searcher.Minimax, depth int) Agent {
	return minimaxAgent{
		sides: [2]*searcher.Minimax{
			game.Red:  minimax.Perspective(game.Red),
			game.Blue: minimax.Perspective(game.Blue),
		},
		depth: depth,
	}
}

func (a minimaxAgent) FindMove(state *game.GameState) (game.Move, bool, metrics.SearchMetric) {
	return a.sides[state.Player()].FindMove(state, a.depth)
}

func (a minimaxAgent) Name() string {
	maxDec, minDec := a.sides[game.Red].Decrements()
	return fmt.Sprintf("minimax(depth=%d,dec=%d/%d)", a.depth, maxDec, minDec)
}
