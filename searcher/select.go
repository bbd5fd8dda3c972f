package searcher

import (
	"bestiary/experiments/metrics"
	"bestiary/game"

	"github.com/rs/zerolog/log"
)

// BestMove picks the move for the side to move. It returns false when there
// is no legal move, which callers should treat as a lost position.
func (m *Minimax) BestMove(state *game.GameState, depth int) (game.Move, bool) {
	move, ok, _ := m.FindMove(state, depth)
	return move, ok
}

// FindMove is BestMove plus the search metrics, which are zero unless the
// searcher was built WithMetrics.
//
// The first capture in generator order is taken without searching. Otherwise
// every move is scored by a minimizing search of the resulting state and the
// last move with the greatest value wins ties.
func (m *Minimax) FindMove(state *game.GameState, depth int) (game.Move, bool, metrics.SearchMetric) {
	c := m.collector()
	c.Start(depth, m.goroutines)

	moves := state.LegalMoves()
	c.SetCandidates(len(moves))
	if len(moves) == 0 {
		return game.Move{}, false, m.complete(c)
	}

	for _, move := range moves {
		if state.IsCapture(move) {
			log.Debug().Str("move", move.String()).Msg("taking first capture without search")
			c.SetCaptured(true)
			return move, true, m.complete(c)
		}
	}

	values := m.scoreAll(state, moves, depth, c)
	bestValue := NegInf
	var bestMove game.Move
	for i, value := range values {
		if value.Cmp(bestValue) >= 0 {
			bestValue = value
			bestMove = moves[i]
		}
	}

	log.Debug().Str("move", bestMove.String()).Str("value", bestValue.String()).Int("candidates", len(moves)).Msg("search complete")
	return bestMove, true, m.complete(c)
}

func (m *Minimax) collector() metrics.Collector {
	if m.withMetrics {
		return metrics.NewCollector()
	}
	return metrics.NewDummyCollector()
}

func (m *Minimax) complete(c metrics.Collector) metrics.SearchMetric {
	metric := c.Complete()
	if m.withMetrics {
		metric.MaxDecrement = m.maxDecrement
		metric.MinDecrement = m.minDecrement
	}
	return metric
}
