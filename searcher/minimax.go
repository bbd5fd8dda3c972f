package searcher

import (
	"bestiary/experiments/metrics"
	"bestiary/game"
	"sync"
)

type Option func(m *Minimax)

// Minimax searches the full move tree to a fixed depth. Red maximizes the
// evaluation and Blue minimizes it. There is no pruning and no cache.
type Minimax struct {
	maxDecrement int
	minDecrement int
	goroutines   int
	evaluate     game.Evaluate
	withMetrics  bool
}

// WithDecrements sets how much depth the maximizer and the minimizer consume
// per recursion. Non-positive values are ignored since they never terminate.
func WithDecrements(maxDec, minDec int) Option {
	return func(m *Minimax) {
		if maxDec > 0 {
			m.maxDecrement = maxDec
		}
		if minDec > 0 {
			m.minDecrement = minDec
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithGoroutines scores root moves in parallel. The chosen move is the same
// as with a sequential scan.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.withMetrics = true
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		maxDecrement: MaxDecrement,
		minDecrement: MinDecrement,
		goroutines:   1,
		evaluate:     game.EvaluateMaterial,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Perspective returns a searcher that scores positions for color. Red keeps m
// as is; for Blue the evaluation is negated, so the maximizing side of every
// search is Blue and the decrements follow that side.
func (m *Minimax) Perspective(color game.Color) *Minimax {
	if color == game.Red {
		return m
	}
	evaluate := m.evaluate
	flipped := *m
	flipped.evaluate = func(gs *game.GameState) int {
		return -evaluate(gs)
	}
	return &flipped
}

func (m *Minimax) Decrements() (maxDec, minDec int) {
	return m.maxDecrement, m.minDecrement
}

// Search returns the minimax value of state. Depth counts down by the
// maximizer or minimizer decrement on each recursion and the static
// evaluation is returned once it reaches zero or below.
func (m *Minimax) Search(state *game.GameState, depth int, maximizing bool) Value {
	return m.search(state, depth, maximizing, metrics.NewDummyCollector())
}

func (m *Minimax) search(state *game.GameState, depth int, maximizing bool, c metrics.Collector) Value {
	c.AddNode()
	if depth <= 0 {
		c.AddLeaf()
		return ExactValue(m.evaluate(state))
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		c.AddStalled()
	}

	if maximizing {
		best := NegInf
		for _, move := range moves {
			value := m.search(state.Play(move), depth-m.maxDecrement, false, c)
			if value.Cmp(best) > 0 {
				best = value
			}
		}
		return best
	}

	best := PosInf
	for _, move := range moves {
		value := m.search(state.Play(move), depth-m.minDecrement, true, c)
		if value.Cmp(best) < 0 {
			best = value
		}
	}
	return best
}

// scoreAll returns the minimizing-reply value of every root move, indexed
// like moves.
func (m *Minimax) scoreAll(state *game.GameState, moves []game.Move, depth int, c metrics.Collector) []Value {
	values := make([]Value, len(moves))
	if m.goroutines <= 1 || len(moves) <= 1 {
		for i, move := range moves {
			values[i] = m.search(state.Play(move), depth, false, c)
		}
		return values
	}

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				values[idx] = m.search(state.Play(moves[idx]), depth, false, c)
			}
		}()
	}

	wg.Wait()
	return values
}
