package agent

import (
	"bestiary/experiments/metrics"
	"bestiary/game"
)

type Agent interface {
	// FindMove returns a move for the side to move, false when there is none,
	// and performance metrics (if collected) from the search
	FindMove(state *game.GameState) (game.Move, bool, metrics.SearchMetric)
	Name() string
}
