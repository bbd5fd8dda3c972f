package experiments

import (
	"bestiary/experiments/metrics"
	"bestiary/game"
	"fmt"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment times one move search from state for each
// goroutine count and reports the search metrics in the same order.
func RunThroughputExperiment(state *game.GameState, depth int, goroutines []int) ([]metrics.SearchMetric, error) {
	if len(goroutines) == 0 {
		return nil, fmt.Errorf("no goroutine counts given")
	}

	results := make([]metrics.SearchMetric, 0, len(goroutines))
	var first game.Move
	for i, n := range goroutines {
		config := metrics.AgentConfig{ID: i + 1, Kind: "minimax", Depth: depth, Goroutines: n}
		move, ok, metric := createMinimax(config).FindMove(state, depth)
		if !ok {
			return nil, fmt.Errorf("%w: %s to move in %s", game.ErrNoLegalMove, state.Player(), state)
		}
		// Root parallelism must not change the choice
		if i == 0 {
			first = move
		} else if move != first {
			return nil, fmt.Errorf("goroutines=%d chose %s, goroutines=%d chose %s", goroutines[0], first, n, move)
		}

		nodesPerSecond := 0.0
		if metric.Duration > 0 {
			nodesPerSecond = float64(metric.Nodes) / metric.Duration.Seconds()
		}
		log.Info().Int("goroutines", n).Int("nodes", metric.Nodes).Dur("took", metric.Duration).Msgf("%.0f nodes/s", nodesPerSecond)
		results = append(results, metric)
	}
	return results, nil
}
