package engine

import (
	"bestiary/experiments/metrics"
	"bestiary/game"
	"errors"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("not your turn")
)

// Reason explains how a game ended.
type Reason int

const (
	InProgress Reason = iota
	Elimination
	NoMoves // The side to move had pieces but no legal move, and loses
	MoveLimit
)

func (r Reason) String() string {
	switch r {
	case Elimination:
		return "elimination"
	case NoMoves:
		return "no legal move"
	case MoveLimit:
		return "move limit"
	default:
		return "in progress"
	}
}

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Adjudicate decides a state: elimination first, then a side to move with
// no legal move loses.
func Adjudicate(state *game.GameState) (game.Outcome, Reason) {
	if outcome := state.IsGameOver(); outcome != game.Ongoing {
		return outcome, Elimination
	}
	if !state.HasLegalMove() {
		return game.WinFor(state.Player().Opponent()), NoMoves
	}
	return game.Ongoing, InProgress
}
