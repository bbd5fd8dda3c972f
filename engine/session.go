package engine

import (
	"bestiary/game"
	"bestiary/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Session is a human playing one side against an agent on the other. It
// holds the current state for a front end that renders it and forwards the
// human's moves.
type Session struct {
	state   *game.GameState
	ai      agent.Agent
	aiColor game.Color
	outcome game.Outcome
	reason  Reason
	history []game.Move
}

// Turn reports what happened on a human move.
type Turn struct {
	Human   game.Move
	Reply   game.Move
	Replied bool
	Outcome game.Outcome
	Reason  Reason
}

func NewSession(state *game.GameState, ai agent.Agent, aiColor game.Color) *Session {
	s := &Session{state: state, ai: ai, aiColor: aiColor}
	s.outcome, s.reason = Adjudicate(state)
	return s
}

func (s *Session) State() *game.GameState {
	return s.state
}

func (s *Session) Outcome() (game.Outcome, Reason) {
	return s.outcome, s.reason
}

func (s *Session) History() []game.Move {
	return append([]game.Move(nil), s.history...)
}

// Play applies the human's move and, if the game goes on, the agent's reply.
func (s *Session) Play(from, to game.Position) (Turn, error) {
	if s.outcome != game.Ongoing {
		return Turn{}, ErrGameOver
	}
	if s.state.Player() == s.aiColor {
		return Turn{}, fmt.Errorf("%w: %s is to move", ErrNotYourTurn, s.aiColor)
	}

	next, err := s.state.TryPlay(from, to)
	if err != nil {
		return Turn{}, err
	}
	turn := Turn{Human: game.Move{From: from, To: to}}
	s.advance(next, turn.Human)

	if s.outcome == game.Ongoing {
		reply, err := s.Reply()
		if err != nil {
			return Turn{}, err
		}
		turn.Reply, turn.Replied = reply, true
	}

	turn.Outcome, turn.Reason = s.outcome, s.reason
	return turn, nil
}

// Reply lets the agent move. Play calls it after every human move; call it
// directly when the agent's side moves first.
func (s *Session) Reply() (game.Move, error) {
	if s.outcome != game.Ongoing {
		return game.Move{}, ErrGameOver
	}
	if s.state.Player() != s.aiColor {
		return game.Move{}, fmt.Errorf("%w: %s is to move", ErrNotYourTurn, s.state.Player())
	}

	move, ok, metric := s.ai.FindMove(s.state)
	if !ok {
		// Adjudicate catches a stuck side before we get here.
		return game.Move{}, fmt.Errorf("%w for %s", game.ErrNoLegalMove, s.aiColor)
	}
	log.Info().Str("move", move.String()).Int("nodes", metric.Nodes).Dur("took", metric.Duration).Msgf("%s replies", s.ai.Name())
	s.advance(s.state.Play(move), move)
	return move, nil
}

func (s *Session) advance(next *game.GameState, move game.Move) {
	s.state = next
	s.history = append(s.history, move)
	s.outcome, s.reason = Adjudicate(next)
	if s.outcome != game.Ongoing {
		log.Info().Msgf("%s by %s", s.outcome, s.reason)
	}
}
